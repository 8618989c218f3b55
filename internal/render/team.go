package render

import (
	"html/template"
	"sort"
	"strings"

	"github.com/crcweb/center-site/internal/content"
)

// Team is the render model for the team page: principal investigators in
// declaration order, group members alphabetically.
type Team struct {
	PIs     []content.Member
	Members []content.Member
}

// BuildTeam splits the member list into PIs and group members.
func BuildTeam(members []content.Member) Team {
	var team Team
	for _, m := range members {
		if m.IsPI {
			team.PIs = append(team.PIs, m)
		} else {
			team.Members = append(team.Members, m)
		}
	}
	sort.SliceStable(team.Members, func(i, j int) bool {
		return team.Members[i].Name < team.Members[j].Name
	})
	return team
}

// SortAdvisoryBoard orders board members by the last word of their name.
// The input is copied, not mutated.
func SortAdvisoryBoard(board []content.AdvisoryMember) []content.AdvisoryMember {
	sorted := make([]content.AdvisoryMember, len(board))
	copy(sorted, board)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lastWord(sorted[i].Name) < lastWord(sorted[j].Name)
	})
	return sorted
}

func lastWord(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// AimMedia is one gallery entry with its media kind resolved.
type AimMedia struct {
	Src     string
	Caption string
	IsVideo bool
}

// AimFaculty is one associated PI, linked when the name matches a team
// member.
type AimFaculty struct {
	Name    string
	Website string
}

// AimView is the render model for one research aim.
type AimView struct {
	Number      int
	Title       string
	Description template.HTML
	Image       string // single image fallback when no gallery
	Gallery     []AimMedia
	Faculty     []AimFaculty
	Tags        []string
}

// BuildAims resolves research aims against the team list: gallery media kinds
// by file extension, faculty names matched by substring against members.
func BuildAims(aims []content.Aim, members []content.Member) []AimView {
	views := make([]AimView, 0, len(aims))
	for _, aim := range aims {
		view := AimView{
			Number:      aim.Number,
			Title:       aim.Title,
			Description: content.Markdown(aim.Description),
			Tags:        aim.Tags,
		}

		if len(aim.Gallery) > 0 {
			for _, g := range aim.Gallery {
				view.Gallery = append(view.Gallery, AimMedia{
					Src:     g.Src,
					Caption: g.Caption,
					IsVideo: strings.HasSuffix(g.Src, ".mp4") || strings.HasSuffix(g.Src, ".webm"),
				})
			}
		} else {
			view.Image = aim.Image
		}

		for _, name := range strings.Split(aim.Faculty, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			faculty := AimFaculty{Name: name}
			for _, m := range members {
				if strings.Contains(m.Name, name) {
					faculty.Name = m.Name
					faculty.Website = m.Website
					break
				}
			}
			view.Faculty = append(view.Faculty, faculty)
		}

		views = append(views, view)
	}
	return views
}

// SplitParagraphs breaks body text on blank lines for the about page.
func SplitParagraphs(body string) []string {
	var paras []string
	for _, p := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paras = append(paras, p)
		}
	}
	return paras
}
