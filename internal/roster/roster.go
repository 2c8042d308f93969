// Package roster parses the player→accounts configuration consumed by
// the report pipeline.
package roster

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/big21ray/soloqtracker-discord/internal/domain"
	"github.com/big21ray/soloqtracker-discord/internal/riot"
)

// ConfigError marks roster configuration problems. It is the only
// error class that aborts a report run; everything downstream degrades
// per account instead.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Player is one roster entry: a display name plus its game accounts in
// configured order. The first account is the player's main.
type Player struct {
	Name     string
	Accounts []domain.Account
}

// Roster is the ordered player list. Order follows the insertion order
// of the configuration object since report rows render in that order.
type Roster struct {
	Players []Player
}

type accountJSON struct {
	AccountName string `json:"account_name"`
	Region      string `json:"region"`
}

// Parse decodes a roster document of the form
//
//	{"PlayerName": [{"account_name": "Name#TAG", "region": "europe"}, ...], ...}
//
// preserving object insertion order. Accounts without a region use
// defaultRegion. Any structural problem is a ConfigError.
func Parse(data []byte, defaultRegion riot.Region) (*Roster, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &ConfigError{Msg: "invalid roster JSON", Err: err}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &ConfigError{Msg: "roster must be a JSON object mapping player name to account list"}
	}

	var r Roster
	for dec.More() {
		nameTok, err := dec.Token()
		if err != nil {
			return nil, &ConfigError{Msg: "invalid roster JSON", Err: err}
		}
		name, _ := nameTok.(string)

		var raw []accountJSON
		if err := dec.Decode(&raw); err != nil {
			return nil, &ConfigError{Msg: fmt.Sprintf("invalid account list for player %q", name), Err: err}
		}

		p := Player{Name: name}
		for _, a := range raw {
			if a.AccountName == "" {
				return nil, &ConfigError{Msg: fmt.Sprintf("missing account_name for player %q", name)}
			}
			region := defaultRegion
			if a.Region != "" {
				region, err = riot.ParseRegion(a.Region)
				if err != nil {
					return nil, &ConfigError{Msg: fmt.Sprintf("invalid region for account %q of player %q", a.AccountName, name), Err: err}
				}
			}
			p.Accounts = append(p.Accounts, domain.Account{Label: a.AccountName, Region: region})
		}
		r.Players = append(r.Players, p)
	}

	if _, err := dec.Token(); err != nil {
		return nil, &ConfigError{Msg: "invalid roster JSON", Err: err}
	}
	return &r, nil
}
