package xmss

import (
	"encoding/base64"
	"encoding/json"

	"github.com/openhashsig/koala-xmss/merkle"
	"github.com/openhashsig/koala-xmss/th"
)

// secretKeyJSON is the wire shape for SecretKey's JSON encoding. Field
// elements serialize the same way wire.go does (4 little-endian bytes
// each), then base64.
type secretKeyJSON struct {
	PRFKey    string   `json:"prf_key"`
	Parameter string   `json:"parameter"`
	Tree      treeJSON `json:"tree"`
	NextEpoch uint64   `json:"next_epoch"`
}

type treeJSON struct {
	Depth  int        `json:"depth"`
	Layers [][]string `json:"layers"`
}

func domainToBase64(d th.Domain) string {
	return base64.StdEncoding.EncodeToString(th.DomainToBytes(d))
}

func domainFromBase64(s string, n int) (th.Domain, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return th.BytesToDomain(raw, n), nil
}

// MarshalJSON implements custom JSON marshaling for SecretKey. spec.md §6
// only fixes the wire format for PublicKey/Signature; SecretKey
// serialization is implementation-defined as long as it round-trips, so
// this follows the teacher's JSON-with-base64-leaves approach.
func (sk *SecretKey) MarshalJSON() ([]byte, error) {
	layers := make([][]string, len(sk.tree.Layers()))
	for i, layer := range sk.tree.Layers() {
		nodes := make([]string, len(layer))
		for j, node := range layer {
			nodes[j] = domainToBase64(node)
		}
		layers[i] = nodes
	}

	return json.Marshal(secretKeyJSON{
		PRFKey:    base64.StdEncoding.EncodeToString(sk.prfKey[:]),
		Parameter: domainToBase64(th.Domain(sk.parameter)),
		Tree: treeJSON{
			Depth:  sk.tree.Depth(),
			Layers: layers,
		},
		NextEpoch: sk.nextEpoch,
	})
}

// UnmarshalSecretKey decodes the JSON format MarshalJSON produces. The
// caller supplies the scheme's TweakableHash and field-element widths,
// since neither is self-describing in the wire data (matching wire.go's
// PublicKey/Signature unmarshalers).
func UnmarshalSecretKey(data []byte, hash th.TweakableHash, parameterLen, leafLen int) (*SecretKey, error) {
	var raw secretKeyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	prfKeyBytes, err := base64.StdEncoding.DecodeString(raw.PRFKey)
	if err != nil {
		return nil, err
	}
	var prfKey [32]byte
	copy(prfKey[:], prfKeyBytes)

	parameter, err := domainFromBase64(raw.Parameter, parameterLen)
	if err != nil {
		return nil, err
	}

	layers := make([][]th.Domain, len(raw.Tree.Layers))
	for i, nodeStrs := range raw.Tree.Layers {
		nodes := make([]th.Domain, len(nodeStrs))
		for j, s := range nodeStrs {
			nodes[j], err = domainFromBase64(s, leafLen)
			if err != nil {
				return nil, err
			}
		}
		layers[i] = nodes
	}

	tree := merkle.FromLayers(hash, th.Params(parameter), raw.Tree.Depth, layers)

	return &SecretKey{
		prfKey:    prfKey,
		parameter: th.Params(parameter),
		tree:      tree,
		nextEpoch: raw.NextEpoch,
	}, nil
}
