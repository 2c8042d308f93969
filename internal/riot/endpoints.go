package riot

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AccountDTO is the Account-V1 payload for a riot id lookup.
type AccountDTO struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// LeagueEntryDTO is one ranked-queue standing from League-V4.
type LeagueEntryDTO struct {
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// MatchDTO carries the single field the pipeline reads from Match-V5
// match detail.
type MatchDTO struct {
	Info struct {
		GameStartTimestamp int64 `json:"gameStartTimestamp"`
	} `json:"info"`
}

// MatchIDsOptions narrows a Match-V5 id listing. Zero-valued fields are
// omitted from the query, except Start and Count which are always sent.
type MatchIDsOptions struct {
	StartTime int64
	EndTime   int64
	Type      string
	Start     int
	Count     int
}

func (c *Client) AccountByRiotID(ctx context.Context, region Region, name, tag string) (*AccountDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		region, url.PathEscape(name), url.PathEscape(tag))
	var out AccountDTO
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LeagueEntriesByPUUID(ctx context.Context, region Region, puuid string) ([]LeagueEntryDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		region.Platform(), puuid)
	var out []LeagueEntryDTO
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MatchIDsByPUUID(ctx context.Context, region Region, puuid string, opts MatchIDsOptions) ([]string, error) {
	q := url.Values{}
	if opts.StartTime > 0 {
		q.Set("startTime", strconv.FormatInt(opts.StartTime, 10))
	}
	if opts.EndTime > 0 {
		q.Set("endTime", strconv.FormatInt(opts.EndTime, 10))
	}
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}
	q.Set("start", strconv.Itoa(opts.Start))
	q.Set("count", strconv.Itoa(opts.Count))

	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?%s",
		region, puuid, q.Encode())
	var out []string
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MatchByID(ctx context.Context, region Region, matchID string) (*MatchDTO, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s", region, matchID)
	var out MatchDTO
	if err := c.getJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
