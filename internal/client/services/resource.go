package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Nigam11/skillhub-front/internal/client/client"
	"github.com/Nigam11/skillhub-front/internal/client/models"
)

const (
	SuggestLimit     = 5
	DashboardSection = 6
)

// Platforms are the keywords that search by platform instead of by title.
var Platforms = []string{"udemy", "coursera", "edx", "youtube"}

// IsPlatform reports whether keyword names a known platform, ignoring case.
func IsPlatform(keyword string) bool {
	k := strings.ToLower(strings.TrimSpace(keyword))
	for _, p := range Platforms {
		if k == p {
			return true
		}
	}
	return false
}

// Section is one titled list on the dashboard. Err is set when the list
// could not be loaded; the other sections are unaffected.
type Section struct {
	Title   string
	Keyword string
	Items   []models.Resource
	Err     error
}

type ResourceService interface {
	Find(ctx context.Context, keyword string) ([]models.Resource, error)
	Search(ctx context.Context, title string) ([]models.Resource, error)
	ByPlatform(ctx context.Context, platform string) ([]models.Resource, error)
	Suggest(ctx context.Context, input string) ([]string, error)
	Dashboard(ctx context.Context) []Section

	Get(ctx context.Context, id int64) (*models.Resource, error)
	Share(ctx context.Context, resource models.Resource, image *models.Image) error
	Update(ctx context.Context, id int64, resource models.Resource) error
	Delete(ctx context.Context, id int64) error
	Saved(ctx context.Context) ([]models.Resource, error)
	Unsave(ctx context.Context, id int64) error
}

type resourceService struct {
	client client.Client
}

func NewResourceService(c client.Client) ResourceService {
	return &resourceService{client: c}
}

// Find runs the search behind the search view. Platform keywords go to the
// platform filter, anything else is a title search. A blank keyword sends
// nothing and returns ErrEmptyQuery.
func (r *resourceService) Find(ctx context.Context, keyword string) ([]models.Resource, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return nil, ErrEmptyQuery
	}
	if IsPlatform(kw) {
		return r.ByPlatform(ctx, kw)
	}
	return r.Search(ctx, kw)
}

func (r *resourceService) Search(ctx context.Context, title string) ([]models.Resource, error) {
	res, err := r.client.SearchResources(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}
	return res, nil
}

func (r *resourceService) ByPlatform(ctx context.Context, platform string) ([]models.Resource, error) {
	res, err := r.client.FilterByPlatform(ctx, platform)
	if err != nil {
		return nil, fmt.Errorf("filter platform %q: %w", platform, err)
	}
	return res, nil
}

// Suggest returns up to SuggestLimit distinct titles matching input.
func (r *resourceService) Suggest(ctx context.Context, input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	res, err := r.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(res))
	out := make([]string, 0, SuggestLimit)
	for _, item := range res {
		if _, ok := seen[item.Title]; ok {
			continue
		}
		seen[item.Title] = struct{}{}
		out = append(out, item.Title)
		if len(out) == SuggestLimit {
			break
		}
	}
	return out, nil
}

func (r *resourceService) Dashboard(ctx context.Context) []Section {
	java := Section{Title: "Java Courses", Keyword: "java"}
	java.Items, java.Err = r.Search(ctx, java.Keyword)

	udemy := Section{Title: "Udemy Courses", Keyword: "udemy"}
	udemy.Items, udemy.Err = r.ByPlatform(ctx, udemy.Keyword)

	sections := []Section{java, udemy}
	for i := range sections {
		if len(sections[i].Items) > DashboardSection {
			sections[i].Items = sections[i].Items[:DashboardSection]
		}
	}
	return sections
}

func (r *resourceService) Get(ctx context.Context, id int64) (*models.Resource, error) {
	res, err := r.client.GetResource(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load resource %d: %w", id, err)
	}
	return res, nil
}

func (r *resourceService) Share(ctx context.Context, resource models.Resource, image *models.Image) error {
	if err := validateResource(resource); err != nil {
		return err
	}
	if err := r.client.CreateResource(ctx, resource, image); err != nil {
		return fmt.Errorf("share resource: %w", err)
	}
	return nil
}

func (r *resourceService) Update(ctx context.Context, id int64, resource models.Resource) error {
	if err := validateResource(resource); err != nil {
		return err
	}
	if err := r.client.UpdateResource(ctx, id, resource); err != nil {
		return fmt.Errorf("update resource %d: %w", id, err)
	}
	return nil
}

func (r *resourceService) Delete(ctx context.Context, id int64) error {
	if err := r.client.DeleteResource(ctx, id); err != nil {
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	return nil
}

func (r *resourceService) Saved(ctx context.Context) ([]models.Resource, error) {
	res, err := r.client.SavedResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved resources: %w", err)
	}
	return res, nil
}

func (r *resourceService) Unsave(ctx context.Context, id int64) error {
	if err := r.client.UnsaveResource(ctx, id); err != nil {
		return fmt.Errorf("unsave resource %d: %w", id, err)
	}
	return nil
}

func validateResource(res models.Resource) error {
	for _, f := range []struct{ name, value string }{
		{"title", res.Title},
		{"description", res.Description},
		{"platform", res.Platform},
		{"course link", res.CourseLink},
	} {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	return nil
}
