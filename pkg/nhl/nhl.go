package nhl

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sw33tLie/gamecount/pkg/schedule"
	"github.com/sw33tLie/gamecount/pkg/whttp"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://statsapi.web.nhl.com/api/v1"
)

// UpstreamError is returned when the API answers with a non-success status.
type UpstreamError struct {
	URL         string
	StatusCode  int
	Description string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Description)
}

// AsUpstreamError unwraps err into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var uErr *UpstreamError
	if errors.As(err, &uErr) {
		return uErr, true
	}
	return nil, false
}

// Client reads the team directory and schedule endpoints.
type Client struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewClient returns a client for baseURL. A nil httpClient uses the whttp default.
func NewClient(baseURL string, httpClient *retryablehttp.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: baseURL, client: httpClient}
}

func (c *Client) get(ctx context.Context, endpoint string) (string, error) {
	res, err := whttp.SendHTTPRequest(ctx, &whttp.WHTTPReq{Method: http.MethodGet, URL: endpoint}, c.client)
	if err != nil {
		return "", errors.Wrapf(err, "GET %s", endpoint)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", &UpstreamError{
			URL:         endpoint,
			StatusCode:  res.StatusCode,
			Description: describe(res),
		}
	}
	return res.BodyString, nil
}

func describe(res *whttp.WHTTPRes) string {
	if msg := gjson.Get(res.BodyString, "message").String(); msg != "" {
		return msg
	}
	if res.HTTPTitle != "" {
		return res.HTTPTitle
	}
	return http.StatusText(res.StatusCode)
}

// FetchTeams returns every team of the league directory.
func (c *Client) FetchTeams(ctx context.Context) ([]schedule.Team, error) {
	body, err := c.get(ctx, c.baseURL+"/teams")
	if err != nil {
		return nil, err
	}

	var teams []schedule.Team
	gjson.Get(body, "teams").ForEach(func(_, value gjson.Result) bool {
		teams = append(teams, schedule.Team{
			ID:   int(value.Get("id").Int()),
			Name: value.Get("name").String(),
		})
		return true
	})
	return teams, nil
}

// FetchSchedule returns the games of teamIDs inside r, in upstream order.
func (c *Client) FetchSchedule(ctx context.Context, r schedule.DateRange, teamIDs []int) ([]schedule.Game, error) {
	body, err := c.get(ctx, c.ScheduleURL(r, teamIDs))
	if err != nil {
		return nil, err
	}
	return parseGames(body), nil
}

// ScheduleURL builds the schedule query. A one-day range uses the date
// parameter, longer ranges use startDate and endDate.
func (c *Client) ScheduleURL(r schedule.DateRange, teamIDs []int) string {
	if !r.SingleDay() {
		return c.rangeURL(r, teamIDs)
	}
	q := teamQuery(teamIDs)
	q.Set("date", r.Begin.Format(schedule.DateLayout))
	return c.baseURL + "/schedule?" + q.Encode()
}

// rangeURL always uses startDate and endDate, even for a single day.
func (c *Client) rangeURL(r schedule.DateRange, teamIDs []int) string {
	q := teamQuery(teamIDs)
	q.Set("startDate", r.Begin.Format(schedule.DateLayout))
	q.Set("endDate", r.End.Format(schedule.DateLayout))
	return c.baseURL + "/schedule?" + q.Encode()
}

func teamQuery(teamIDs []int) url.Values {
	ids := make([]string, len(teamIDs))
	for i, id := range teamIDs {
		ids[i] = strconv.Itoa(id)
	}
	q := url.Values{}
	q.Set("teamId", strings.Join(ids, ","))
	return q
}

func parseGames(body string) []schedule.Game {
	var games []schedule.Game
	gjson.Get(body, "dates").ForEach(func(_, date gjson.Result) bool {
		day := date.Get("date").String()
		date.Get("games").ForEach(func(_, g gjson.Result) bool {
			games = append(games, schedule.Game{
				ID:     g.Get("gamePk").Int(),
				Date:   day,
				Status: schedule.Status(g.Get("status.detailedState").String()),
				Home:   side(g.Get("teams.home.team")),
				Away:   side(g.Get("teams.away.team")),
			})
			return true
		})
		return true
	})
	return games
}

func side(team gjson.Result) schedule.Side {
	return schedule.Side{
		TeamID: int(team.Get("id").Int()),
		Team:   team.Get("name").String(),
	}
}
