package model

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	SearchBlock     SearchType = "block"
	SearchTx        SearchType = "tx"
	SearchAddress   SearchType = "address"
	SearchTokenList SearchType = "token_list"
)

type (
	SearchType string

	// AddressHit is the address variant payload of a search response.
	AddressHit struct {
		Chain   Chain  `json:"chain"`
		Address string `json:"address"`
	}

	// Token is one entry of a token_list search response.
	Token struct {
		Chain   Chain  `json:"chain"`
		Address string `json:"address"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	}

	// SearchResult is the backend's {type, data} envelope decoded into an
	// explicit tagged union. Exactly one of the payload fields is non-zero,
	// selected by Type; an unrecognized tag is a decode error rather than a
	// silent fallthrough.
	SearchResult struct {
		Type    SearchType
		Block   *Block
		Tx      *Transaction
		Address *AddressHit
		Tokens  []Token
	}
)

func (r *SearchResult) UnmarshalJSON(b []byte) error {
	var env struct {
		Type SearchType      `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &env); err != nil {
		return errors.Wrap(err, "decode search envelope")
	}

	r.Type = env.Type
	switch env.Type {
	case SearchBlock:
		r.Block = new(Block)
		return errors.Wrap(json.Unmarshal(env.Data, r.Block), "decode block hit")
	case SearchTx:
		r.Tx = new(Transaction)
		return errors.Wrap(json.Unmarshal(env.Data, r.Tx), "decode tx hit")
	case SearchAddress:
		r.Address = new(AddressHit)
		return errors.Wrap(json.Unmarshal(env.Data, r.Address), "decode address hit")
	case SearchTokenList:
		return errors.Wrap(json.Unmarshal(env.Data, &r.Tokens), "decode token list")
	}
	return errors.Errorf("unknown search result type %q", env.Type)
}

func (r *SearchResult) MarshalJSON() ([]byte, error) {
	env := struct {
		Type SearchType `json:"type"`
		Data any        `json:"data"`
	}{Type: r.Type}

	switch r.Type {
	case SearchBlock:
		env.Data = r.Block
	case SearchTx:
		env.Data = r.Tx
	case SearchAddress:
		env.Data = r.Address
	case SearchTokenList:
		env.Data = r.Tokens
	default:
		return nil, errors.Errorf("unknown search result type %q", r.Type)
	}
	return json.Marshal(env)
}
