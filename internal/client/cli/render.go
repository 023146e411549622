package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Nigam11/skillhub-front/internal/client/models"
)

const maxTitleWidth = 48

func renderResources(w io.Writer, items []models.Resource, empty string) {
	if len(items) == 0 {
		fmt.Fprintln(w, empty)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPLATFORM\tPRICE\tOWNER")
	for _, r := range items {
		owner := r.OwnerName
		if r.OwnerID != 0 {
			owner = fmt.Sprintf("%s (%d)", r.OwnerName, r.OwnerID)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, truncate(r.Title, maxTitleWidth), r.Platform, r.Price, strings.TrimSpace(owner))
	}
	_ = tw.Flush()
}

// renderProfile prints a user card. The email is only shown on the own
// profile.
func renderProfile(w io.Writer, p *models.Profile, own bool) {
	fmt.Fprintf(w, "\n%s\n", p.Name)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}
	if own {
		field("Email", p.Email)
	}
	field("Gender", p.Gender)
	field("WhatsApp", p.Whatsapp)
	field("Instagram", p.Instagram)
	field("Bio", p.Bio)
	field("Picture", p.ProfilePic)
	_ = tw.Flush()

	fmt.Fprintln(w, "\nShared courses:")
	renderResources(w, p.Resources, "No courses shared yet.")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
