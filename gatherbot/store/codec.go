package store

import (
	"encoding/json"
	"fmt"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

func encode(a *account.Account) ([]byte, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode account: %w", err)
	}
	return data, nil
}

func decode(rawKey string, data []byte) (account.Key, *account.Account, error) {
	key, err := account.ParseKey(rawKey)
	if err != nil {
		return account.Key{}, nil, err
	}
	a := new(account.Account)
	if err := json.Unmarshal(data, a); err != nil {
		return account.Key{}, nil, fmt.Errorf("failed to decode account %s: %w", rawKey, err)
	}
	return key, a, nil
}
