package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Nigam11/skillhub-front/internal/client/models"
	"github.com/Nigam11/skillhub-front/internal/client/routes"
)

// askDefault reads a value and keeps current when the answer is empty.
func (a *App) askDefault(label, current string) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// askFields fills each target in order, stopping at the first read error.
func (a *App) askFields(fields []formField) error {
	for _, f := range fields {
		v, err := a.askDefault(f.label, *f.value)
		if err != nil {
			return err
		}
		*f.value = v
	}
	return nil
}

type formField struct {
	label string
	value *string
}

func (a *App) editProfileForm(ctx context.Context, _ routes.Route) error {
	me, err := a.profiles.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Edit profile (press Enter to keep the current value).")
	upd := models.UpdateFrom(me.User)
	err = a.askFields([]formField{
		{"Name", &upd.Name},
		{"Bio", &upd.Bio},
		{"Gender", &upd.Gender},
		{"WhatsApp", &upd.Whatsapp},
		{"Instagram", &upd.Instagram},
	})
	if err != nil {
		return err
	}
	img, err := getImage(a.reader, "Profile picture", a.out)
	if err != nil {
		return err
	}

	if err := a.profiles.Update(ctx, upd, img); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return a.router.Navigate(ctx, routes.Profile)
}

func (a *App) editResourceForm(ctx context.Context, r routes.Route) error {
	id, err := r.ID()
	if err != nil {
		return err
	}
	res, err := a.resources.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Edit resource %d (press Enter to keep the current value).\n", id)
	price := strconv.FormatFloat(float64(res.Price), 'f', -1, 64)
	err = a.askFields([]formField{
		{"Title", &res.Title},
		{"Description", &res.Description},
		{"Platform", &res.Platform},
		{"Price (0 for free)", &price},
		{"Course link", &res.CourseLink},
	})
	if err != nil {
		return err
	}
	if err := res.Price.Set(price); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}

	if err := a.resources.Update(ctx, id, *res); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Resource updated.")
	return a.router.Navigate(ctx, routes.Profile)
}

func (a *App) shareForm(ctx context.Context, _ routes.Route) error {
	fmt.Fprintln(a.out, "Share a learning resource.")

	var res models.Resource
	var err error
	if res.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if res.Description, err = getMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	if res.Platform, err = getSimpleText(a.reader, "Platform (e.g. Udemy, Coursera, YouTube)", a.out); err != nil {
		return err
	}
	price, err := getSimpleText(a.reader, "Price (empty for free)", a.out)
	if err != nil {
		return err
	}
	if err := res.Price.Set(price); err != nil {
		return fmt.Errorf("%w: %v", errInvalidInput, err)
	}
	if res.CourseLink, err = getSimpleText(a.reader, "Course link", a.out); err != nil {
		return err
	}
	img, err := getImage(a.reader, "Cover image", a.out)
	if err != nil {
		return err
	}

	if err := a.resources.Share(ctx, res, img); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Resource shared successfully!")
	return a.router.Navigate(ctx, routes.Profile)
}
