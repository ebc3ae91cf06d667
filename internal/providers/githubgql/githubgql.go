package githubgql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/vukan322/gitstreak/internal/core"
)

const (
	defaultGraphQLURL = "https://api.github.com/graphql"
	defaultUserAgent  = "gitstreak/0.1"
)

const calendarQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

// Provider fetches activity via the GraphQL contribution calendar,
// which reports an authoritative per-day count and lifetime total.
// A token is required; the calendar endpoint rejects anonymous calls.
type Provider struct {
	rest       *github.Client
	httpClient *http.Client
	graphqlURL string
	token      string
}

func New(token string) *Provider {
	hc := &http.Client{Timeout: 10 * time.Second}
	rest := github.NewClient(hc)
	if token != "" {
		rest = rest.WithAuthToken(token)
	}
	return &Provider{
		rest:       rest,
		httpClient: hc,
		graphqlURL: defaultGraphQLURL,
		token:      token,
	}
}

func (p *Provider) Name() string {
	return "github-graphql"
}

func (p *Provider) Fetch(ctx context.Context, handle string) (core.ActivityStats, error) {
	if p.token == "" {
		return core.ActivityStats{}, fmt.Errorf(
			"github graphql: a token is required (set GITSTREAK_TOKEN, GH_TOKEN or GITHUB_TOKEN)")
	}

	user, _, err := p.rest.Users.Get(ctx, handle)
	if err != nil {
		return core.ActivityStats{}, fmt.Errorf("github: fetch user: %w", err)
	}

	stars, err := p.sumStars(ctx, handle)
	if err != nil {
		return core.ActivityStats{}, fmt.Errorf("github: fetch repos: %w", err)
	}

	cal, err := p.fetchCalendar(ctx, handle)
	if err != nil {
		return core.ActivityStats{}, err
	}

	days := make([]core.DayCount, 0, len(cal.Weeks)*7)
	for _, week := range cal.Weeks {
		for _, day := range week.ContributionDays {
			days = append(days, core.DayCount{Date: day.Date, Count: day.ContributionCount})
		}
	}

	return core.ActivityStats{
		Profile: core.ProfileSummary{
			Repos:              user.GetPublicRepos(),
			Stars:              stars,
			Followers:          user.GetFollowers(),
			Following:          user.GetFollowing(),
			TotalContributions: cal.TotalContributions,
		},
		Days: days,
	}, nil
}

func (p *Provider) sumStars(ctx context.Context, handle string) (int, error) {
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	total := 0
	for {
		repos, resp, err := p.rest.Repositories.ListByUser(ctx, handle, opts)
		if err != nil {
			return 0, err
		}
		for _, r := range repos {
			total += r.GetStargazersCount()
		}
		if resp.NextPage == 0 {
			return total, nil
		}
		opts.Page = resp.NextPage
	}
}

type contributionCalendar struct {
	TotalContributions int            `json:"totalContributions"`
	Weeks              []calendarWeek `json:"weeks"`
}

type calendarWeek struct {
	ContributionDays []calendarDay `json:"contributionDays"`
}

type calendarDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

type graphqlResponse struct {
	Data *struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar contributionCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (p *Provider) fetchCalendar(ctx context.Context, handle string) (*contributionCalendar, error) {
	body, err := json.Marshal(map[string]any{
		"query":     calendarQuery,
		"variables": map[string]string{"login": handle},
	})
	if err != nil {
		return nil, fmt.Errorf("github graphql: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("github graphql: new request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github graphql: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("github graphql: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var parsed graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("github graphql: decode response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			msgs = append(msgs, e.Message)
		}
		return nil, fmt.Errorf("github graphql: response error: %s", strings.Join(msgs, "; "))
	}

	if parsed.Data == nil || parsed.Data.User == nil {
		return nil, fmt.Errorf("github graphql: response missing contribution data for %q", handle)
	}

	cal := parsed.Data.User.ContributionsCollection.ContributionCalendar
	return &cal, nil
}
