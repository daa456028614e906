package extService

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"parlayPilot/models"
	"parlayPilot/models/external"
	"parlayPilot/services/common"
)

// sportPaths maps the engine's sport keys to ESPN scoreboard paths.
var sportPaths = map[string]string{
	"cfb": "football/college-football",
	"cbb": "basketball/mens-college-basketball",
	"nfl": "football/nfl",
	"nba": "basketball/nba",
}

// ESPNFeed fetches game results from the public ESPN scoreboard API. It
// implements betService.ScoreFeed.
type ESPNFeed struct{}

func NewESPNFeed() *ESPNFeed {
	return &ESPNFeed{}
}

// GetResults returns the scoreboard slice for one sport and calendar date.
// Games that are not final come back with their status so the caller can skip
// them; an empty day is an empty slice, not an error.
func (f *ESPNFeed) GetResults(sport string, date time.Time) ([]models.GameResult, error) {
	path, ok := sportPaths[strings.ToLower(sport)]
	if !ok {
		return nil, fmt.Errorf("no scoreboard source for sport %q", sport)
	}

	scoreboardUrl := fmt.Sprintf("http://site.api.espn.com/apis/site/v2/sports/%s/scoreboard?dates=%s",
		path, date.UTC().Format("20060102"))

	resp, err := common.ESPNWrapper(scoreboardUrl)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var scoreboard external.ESPN_Scoreboard
	if err := json.NewDecoder(resp.Body).Decode(&scoreboard); err != nil {
		return nil, err
	}

	results := make([]models.GameResult, 0, len(scoreboard.Events))
	for _, event := range scoreboard.Events {
		if len(event.Competitions) == 0 {
			continue
		}
		result, ok := eventToResult(sport, event)
		if !ok {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// eventToResult flattens one scoreboard event into a GameResult. Events
// missing a home or away competitor are dropped; they cannot be matched to a
// leg anyway.
func eventToResult(sport string, event external.ESPN_Event) (models.GameResult, bool) {
	comp := event.Competitions[0]

	var home, away *external.ESPN_Competitor
	for i := range comp.Competitors {
		switch comp.Competitors[i].HomeAway {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return models.GameResult{}, false
	}

	result := models.GameResult{
		EventID:  event.ID,
		Sport:    strings.ToLower(sport),
		GameDate: parseEventDate(event.Date),
		HomeTeam: home.Team.DisplayName,
		AwayTeam: away.Team.DisplayName,
		Status:   mapStatus(event.Status),
	}

	if result.Status == models.GameStatusFinal {
		homeScore, homeErr := strconv.Atoi(home.Score)
		awayScore, awayErr := strconv.Atoi(away.Score)
		if homeErr != nil || awayErr != nil {
			// Final without parseable scores is useless to the engine.
			return models.GameResult{}, false
		}
		result.HomeScore = homeScore
		result.AwayScore = awayScore
	}

	return result, true
}

func mapStatus(status external.ESPN_Status) string {
	if status.Type.Name == "STATUS_FINAL" || status.Type.Completed {
		return models.GameStatusFinal
	}
	switch status.Type.State {
	case "pre":
		return models.GameStatusScheduled
	case "in":
		return models.GameStatusInProgress
	}
	return strings.ToLower(status.Type.Name)
}

// ESPN timestamps come back minute-precision UTC ("2025-11-23T17:00Z").
func parseEventDate(raw string) time.Time {
	if t, err := time.Parse("2006-01-02T15:04Z", raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	return time.Time{}
}
