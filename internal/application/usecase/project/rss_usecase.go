package project

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/pranavsangichetty/portfolio/internal/domain/profile"
	"github.com/pranavsangichetty/portfolio/internal/domain/project"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

type RSSUseCase struct {
	repo    project.Repository
	owner   profile.Profile
	baseURL string
	logger  logger.Logger
}

func NewRSSUseCase(r project.Repository, owner profile.Profile, publicBaseURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{repo: r, owner: owner, baseURL: publicBaseURL, logger: log}
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	ctx, span := tracer.Start(ctx, "ProjectsRSS")
	defer span.End()

	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list projects for RSS", err)
		span.RecordError(err)
		return nil, err
	}

	now := time.Now()
	feed := &feeds.Feed{
		Title:       uc.owner.Name + " - Projects",
		Link:        &feeds.Link{Href: uc.resolve("/")},
		Description: uc.owner.Headline,
		Author:      &feeds.Author{Name: uc.owner.Name, Email: uc.owner.Email},
		Created:     now,
	}

	for _, info := range project.Categories() {
		for _, p := range all[info.Key] {
			link := uc.resolve("/")
			if p.Link != nil && *p.Link != "" && *p.Link != "#" {
				link = uc.resolve(*p.Link)
			}
			feed.Items = append(feed.Items, &feeds.Item{
				Id:          strconv.FormatInt(p.ID, 10),
				Title:       p.Title,
				Link:        &feeds.Link{Href: link},
				Description: p.Description,
				Created:     createdAt(p.ID, now),
				Source:      &feeds.Link{Href: uc.resolve("/api/projects/" + string(info.Key))},
			})
		}
	}

	uc.logger.Info("RSS feed generated successfully", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}

// resolve makes ref absolute against the public base URL.
func (uc *RSSUseCase) resolve(ref string) string {
	base, err := url.Parse(uc.baseURL)
	if err != nil || base.Scheme == "" {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}

// createdAt reads generated ids as Unix milliseconds. Small seeded ids fall back to now.
func createdAt(id int64, now time.Time) time.Time {
	t := time.UnixMilli(id)
	if t.Year() < 2000 || t.After(now) {
		return now
	}
	return t
}
