package render

import (
	"testing"

	"github.com/crcweb/center-site/internal/content"
)

func TestBuildTeam(t *testing.T) {
	members := []content.Member{
		{Name: "Zhang, Wei", Role: "PhD Student"},
		{Name: "Smith, Jane", Role: "Director", IsPI: true},
		{Name: "Adams, Kyle", Role: "Postdoc"},
		{Name: "Chen, Li", Role: "Co-PI", IsPI: true},
	}

	team := BuildTeam(members)

	// PIs keep their declaration order.
	if len(team.PIs) != 2 || team.PIs[0].Name != "Smith, Jane" || team.PIs[1].Name != "Chen, Li" {
		t.Errorf("PIs wrong: %+v", team.PIs)
	}

	// Group members sort alphabetically.
	if len(team.Members) != 2 || team.Members[0].Name != "Adams, Kyle" || team.Members[1].Name != "Zhang, Wei" {
		t.Errorf("Members wrong: %+v", team.Members)
	}
}

func TestSortAdvisoryBoard(t *testing.T) {
	board := []content.AdvisoryMember{
		{Name: "Dr. Maria Zimmermann"},
		{Name: "John Abbott"},
		{Name: "Priya Natarajan"},
	}

	sorted := SortAdvisoryBoard(board)

	want := []string{"John Abbott", "Priya Natarajan", "Dr. Maria Zimmermann"}
	for i, m := range sorted {
		if m.Name != want[i] {
			t.Errorf("Position %d: %q, want %q", i, m.Name, want[i])
		}
	}

	// The input keeps its original order.
	if board[0].Name != "Dr. Maria Zimmermann" {
		t.Error("SortAdvisoryBoard must not mutate its input")
	}
}

func TestBuildAims(t *testing.T) {
	members := []content.Member{
		{Name: "Smith, Jane", IsPI: true, Website: "https://example.edu/smith"},
	}
	aims := []content.Aim{
		{
			Number:  1,
			Title:   "Sensing",
			Faculty: "Smith, Unlisted Person",
			Gallery: []content.GalleryItem{
				{Src: "/img/chip.jpg", Caption: "Prototype"},
				{Src: "/video/demo.mp4", Caption: "Demo"},
			},
		},
		{Number: 2, Title: "Materials", Image: "/img/materials.jpg"},
	}

	views := BuildAims(aims, members)
	if len(views) != 2 {
		t.Fatalf("Expected 2 views, got %d", len(views))
	}

	// Gallery media kinds by extension.
	gallery := views[0].Gallery
	if gallery[0].IsVideo {
		t.Error("jpg should not be treated as video")
	}
	if !gallery[1].IsVideo {
		t.Error("mp4 should be treated as video")
	}

	// Matched faculty get the member's full name and website; unmatched names
	// pass through unlinked.
	faculty := views[0].Faculty
	if len(faculty) != 2 {
		t.Fatalf("Expected 2 faculty, got %d", len(faculty))
	}
	if faculty[0].Name != "Smith, Jane" || faculty[0].Website == "" {
		t.Errorf("Matched faculty wrong: %+v", faculty[0])
	}
	if faculty[1].Name != "Unlisted Person" || faculty[1].Website != "" {
		t.Errorf("Unmatched faculty wrong: %+v", faculty[1])
	}

	// Without a gallery the single image is used.
	if views[1].Image != "/img/materials.jpg" || len(views[1].Gallery) != 0 {
		t.Errorf("Single-image aim wrong: %+v", views[1])
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := SplitParagraphs("First paragraph.\n\nSecond one.\n\n\n\nThird.")
	want := []string{"First paragraph.", "Second one.", "Third."}
	if len(got) != len(want) {
		t.Fatalf("Got %d paragraphs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Paragraph %d: %q, want %q", i, got[i], want[i])
		}
	}

	if got := SplitParagraphs(""); len(got) != 0 {
		t.Errorf("Empty body should yield no paragraphs, got %v", got)
	}
}
