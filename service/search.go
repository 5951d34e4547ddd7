package service

import (
	"encoding/json"
	"strings"
)

type searchRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

// ViralContext queries the web-search provider for trending material around
// the topic. Best effort: any failure returns an empty string and the topics
// prompt simply goes out without it.
func (s *Service) ViralContext(query string) string {
	if s.SearchURL == "" {
		return ""
	}
	body, _ := json.Marshal(searchRequest{Query: query + " linkedin viral", Num: 3})
	resp, err := s.Client.R().
		SetHeader("X-API-KEY", s.SearchAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(string(body)).
		Post(s.SearchURL)
	if err != nil || resp.StatusCode() >= 300 {
		s.Log.Warnw("search provider unavailable", "err", err)
		return ""
	}

	var parsed searchResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return ""
	}
	snippets := make([]string, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		if r.Snippet != "" {
			snippets = append(snippets, r.Snippet)
		}
	}
	return strings.Join(snippets, " | ")
}
