package gitwork

import (
	"reflect"
	"strings"
	"testing"
)

func TestBranchDescriptionAccessors(t *testing.T) {
	t.Run("get returns first value", func(t *testing.T) {
		d := Build(WithTickets("SE-123", "SE-456"))
		if got := d.Get("Ticket"); got != "SE-123" {
			t.Errorf("Get(Ticket) = %q, want %q", got, "SE-123")
		}
	})

	t.Run("get returns empty when missing", func(t *testing.T) {
		d := &BranchDescription{}
		if got := d.Get("Ticket"); got != "" {
			t.Errorf("Get(Ticket) = %q, want empty", got)
		}
	})

	t.Run("get is case insensitive", func(t *testing.T) {
		d := Build(WithTickets("SE-123"))
		for _, key := range []string{"ticket", "TICKET", "Ticket"} {
			if got := d.Get(key); got != "SE-123" {
				t.Errorf("Get(%q) = %q, want %q", key, got, "SE-123")
			}
		}
	})

	t.Run("get all returns all values", func(t *testing.T) {
		d := Build(WithTickets("SE-123", "SE-456"))
		want := []string{"SE-123", "SE-456"}
		if got := d.GetAll("ticket"); !reflect.DeepEqual(got, want) {
			t.Errorf("GetAll(ticket) = %v, want %v", got, want)
		}
	})

	t.Run("get all returns nil when missing", func(t *testing.T) {
		d := &BranchDescription{}
		if got := d.GetAll("Ticket"); len(got) != 0 {
			t.Errorf("GetAll(Ticket) = %v, want empty", got)
		}
	})
}

func TestBranchDescriptionReplace(t *testing.T) {
	t.Run("sets single value", func(t *testing.T) {
		d := &BranchDescription{}
		d.Replace("Remote", "feature/wolf/SE-123")
		if got := d.Get("Remote"); got != "feature/wolf/SE-123" {
			t.Errorf("Get(Remote) = %q", got)
		}
	})

	t.Run("overwrites existing", func(t *testing.T) {
		d := &BranchDescription{}
		d.Add("Remote", "old-branch")
		d.Replace("Remote", "new-branch")
		if got := d.GetAll("Remote"); !reflect.DeepEqual(got, []string{"new-branch"}) {
			t.Errorf("GetAll(Remote) = %v, want [new-branch]", got)
		}
	})

	t.Run("normalizes key casing", func(t *testing.T) {
		d := &BranchDescription{}
		d.Add("remote", "old")
		d.Replace("Remote", "new")
		if got := d.Keys(); !reflect.DeepEqual(got, []string{"Remote"}) {
			t.Errorf("Keys() = %v, want [Remote]", got)
		}
		if got := d.Get("Remote"); got != "new" {
			t.Errorf("Get(Remote) = %q, want %q", got, "new")
		}
	})
}

func TestBranchDescriptionAdd(t *testing.T) {
	t.Run("appends to existing", func(t *testing.T) {
		d := &BranchDescription{}
		d.Add("Ticket", "SE-123")
		d.Add("Ticket", "SE-456")
		want := []string{"SE-123", "SE-456"}
		if got := d.GetAll("Ticket"); !reflect.DeepEqual(got, want) {
			t.Errorf("GetAll(Ticket) = %v, want %v", got, want)
		}
	})

	t.Run("preserves existing key casing", func(t *testing.T) {
		d := &BranchDescription{}
		d.Add("Ticket", "SE-123")
		d.Add("ticket", "SE-456")
		if got := d.Keys(); !reflect.DeepEqual(got, []string{"Ticket"}) {
			t.Errorf("Keys() = %v, want [Ticket]", got)
		}
	})
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantSummary string
		wantTickets []string
		wantRemote  string
	}{
		{
			name: "empty string",
			text: "",
		},
		{
			name:        "summary only",
			text:        "Just a plain text description.",
			wantSummary: "Just a plain text description.",
		},
		{
			name:        "multiline summary only",
			text:        "First line.\n\nSecond paragraph with more detail.",
			wantSummary: "First line.\n\nSecond paragraph with more detail.",
		},
		{
			name:        "trailers only",
			text:        "Ticket: SE-123\nRemote: feature/wolf/SE-123-stuff",
			wantTickets: []string{"SE-123"},
			wantRemote:  "feature/wolf/SE-123-stuff",
		},
		{
			name:        "summary and trailers",
			text:        "Add caching for API responses.\n\nTicket: SE-123\nType: feature",
			wantSummary: "Add caching for API responses.",
			wantTickets: []string{"SE-123"},
		},
		{
			name:        "multiple tickets",
			text:        "Ticket: SE-123\nTicket: SE-456\nRemote: branch-name",
			wantTickets: []string{"SE-123", "SE-456"},
			wantRemote:  "branch-name",
		},
		{
			name:        "strips whitespace",
			text:        "  Ticket: SE-123  \n  Remote: branch-name  ",
			wantTickets: []string{"SE-123"},
			wantRemote:  "branch-name",
		},
		{
			name:        "extra blank lines before trailers",
			text:        "Summary here.\n\n\nTicket: SE-123\nRemote: branch",
			wantSummary: "Summary here.",
			wantTickets: []string{"SE-123"},
			wantRemote:  "branch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Parse(tt.text)
			if d.Summary != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", d.Summary, tt.wantSummary)
			}
			if got := d.Tickets(); !reflect.DeepEqual(got, tt.wantTickets) && !(len(got) == 0 && len(tt.wantTickets) == 0) {
				t.Errorf("Tickets() = %v, want %v", got, tt.wantTickets)
			}
			if got := d.Remote(); got != tt.wantRemote {
				t.Errorf("Remote() = %q, want %q", got, tt.wantRemote)
			}
		})
	}

	t.Run("preserves key case", func(t *testing.T) {
		d := Parse("Created-from: prod\nPR: https://example.com/pr/1")
		want := []string{"Created-from", "PR"}
		if got := d.Keys(); !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
		if got := d.PR(); got != "https://example.com/pr/1" {
			t.Errorf("PR() = %q", got)
		}
	})

	t.Run("body colon line not confused with trailers", func(t *testing.T) {
		text := "Summary.\n\nThis line has: a colon but is body text.\n\nTicket: SE-123"
		d := Parse(text)
		if got := d.Tickets(); !reflect.DeepEqual(got, []string{"SE-123"}) {
			t.Errorf("Tickets() = %v, want [SE-123]", got)
		}
		if !strings.Contains(d.Summary, "colon") {
			t.Errorf("Summary = %q, want it to contain %q", d.Summary, "colon")
		}
	})

	t.Run("trailer-like lines mid text cancel detection", func(t *testing.T) {
		// The backward scan hits "not a trailer line" before any blank
		// separator, so nothing is treated as a trailer.
		text := "Ticket: SE-123\nnot a trailer line at the end"
		d := Parse(text)
		if got := d.Keys(); len(got) != 0 {
			t.Errorf("Keys() = %v, want none", got)
		}
		if d.Summary != text {
			t.Errorf("Summary = %q, want full text", d.Summary)
		}
	})

	t.Run("non-trailer line above trailers cancels the whole block", func(t *testing.T) {
		// The cancel applies to the entire text, discarding trailer
		// lines already matched below the offending line.
		tests := []struct {
			name        string
			text        string
			wantTickets []string
		}{
			{
				name: "prose directly above a trailer",
				text: "Summary prose\nTicket: SE-123",
			},
			{
				name: "trailer above prose above a trailer",
				text: "Ticket: SE-1\nprose\nTicket: SE-2",
			},
			{
				name:        "blank separator shields the lower block",
				text:        "Ticket: SE-1\nprose\n\nTicket: SE-2",
				wantTickets: []string{"SE-2"},
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				d := Parse(tt.text)
				if got := d.Tickets(); !reflect.DeepEqual(got, tt.wantTickets) && !(len(got) == 0 && len(tt.wantTickets) == 0) {
					t.Errorf("Tickets() = %v, want %v", got, tt.wantTickets)
				}
				if len(tt.wantTickets) == 0 {
					if len(d.Keys()) != 0 {
						t.Errorf("Keys() = %v, want none", d.Keys())
					}
					if d.Summary != tt.text {
						t.Errorf("Summary = %q, want full text", d.Summary)
					}
				} else if d.Summary != "Ticket: SE-1\nprose" {
					t.Errorf("Summary = %q, want the lines above the separator", d.Summary)
				}
			})
		}
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		desc *BranchDescription
		want string
	}{
		{
			name: "empty",
			desc: &BranchDescription{},
			want: "",
		},
		{
			name: "summary only",
			desc: Build(WithSummary("Just a summary.")),
			want: "Just a summary.",
		},
		{
			name: "trailers only",
			desc: Build(WithTickets("SE-123"), WithRemote("branch")),
			want: "Ticket: SE-123\nRemote: branch",
		},
		{
			name: "summary and trailers",
			desc: Build(WithSummary("Add feature."), WithTickets("SE-123"), WithType("feature")),
			want: "Add feature.\n\nTicket: SE-123\nType: feature",
		},
		{
			name: "multiple values",
			desc: Build(WithTickets("SE-123", "SE-456")),
			want: "Ticket: SE-123\nTicket: SE-456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	original := Build(
		WithSummary("Add new feature."),
		WithTickets("SE-123", "SE-456"),
		WithRemote("feature/wolf/SE-123-stuff"),
		WithType("feature"),
	)

	parsed := Parse(original.Format())

	if parsed.Summary != original.Summary {
		t.Errorf("Summary = %q, want %q", parsed.Summary, original.Summary)
	}
	if got, want := parsed.Keys(), original.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	for _, key := range original.Keys() {
		if got, want := parsed.GetAll(key), original.GetAll(key); !reflect.DeepEqual(got, want) {
			t.Errorf("GetAll(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestBuild(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		d := Build(WithTickets("SE-123"))
		if got := d.Tickets(); !reflect.DeepEqual(got, []string{"SE-123"}) {
			t.Errorf("Tickets() = %v", got)
		}
		if d.Summary != "" {
			t.Errorf("Summary = %q, want empty", d.Summary)
		}
	})

	t.Run("full", func(t *testing.T) {
		d := Build(
			WithTickets("SE-123"),
			WithRemote("feature/wolf/SE-123-stuff"),
			WithType("feature"),
			WithAuthor("wolf"),
			WithCreatedFrom("prod"),
			WithSummary("Add caching."),
		)
		if d.Summary != "Add caching." {
			t.Errorf("Summary = %q", d.Summary)
		}
		if got := d.Remote(); got != "feature/wolf/SE-123-stuff" {
			t.Errorf("Remote() = %q", got)
		}
		if got := d.Get("Type"); got != "feature" {
			t.Errorf("Get(Type) = %q", got)
		}
		if got := d.Get("Author"); got != "wolf" {
			t.Errorf("Get(Author) = %q", got)
		}
		if got := d.Get("Created-from"); got != "prod" {
			t.Errorf("Get(Created-from) = %q", got)
		}
	})

	t.Run("no options", func(t *testing.T) {
		d := Build()
		if d.Summary != "" || len(d.Keys()) != 0 {
			t.Errorf("Build() = %+v, want empty description", d)
		}
	})
}
