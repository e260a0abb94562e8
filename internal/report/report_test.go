package report

import "testing"

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Category
	}{
		{"empty code is clean", "", CategoryClean},
		{"untracked", "??", CategoryUntracked},
		{"added", "A", CategoryAdded},
		{"modified", "M", CategoryModified},
		{"deleted", "D", CategoryDeleted},
		{"renamed", "R", CategoryRenamed},
		{"copied", "C", CategoryCopied},
		{"unmerged", "U", CategoryUnmerged},
		{"two-letter combination", "AM", CategoryUnknown},
		{"doubled modified", "MM", CategoryUnknown},
		{"doubled unmerged", "UU", CategoryUnknown},
		{"ignored marker", "!!", CategoryUnknown},
		{"garbage", "xyz", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CategoryOf(tt.code); got != tt.want {
				t.Errorf("CategoryOf(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestCategoryOfNeverFails(t *testing.T) {
	// Every code must map somewhere; unrecognized codes go to UNKNOWN,
	// never to the clean zero value.
	for _, code := range []string{"Z", "R100", "D ", " M", "??!"} {
		if got := CategoryOf(code); got == CategoryClean {
			t.Errorf("CategoryOf(%q) = clean, want a non-clean category", code)
		}
	}
}

func TestResultLine(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "clean file",
			result: Result{Revision: "a1b2c3d4"},
			want:   "'ref:a1b2c3d4'",
		},
		{
			name:   "modified file",
			result: Result{Revision: "a1b2c3d4", Category: CategoryModified, Blob: "f00dfeed"},
			want:   "'ref:a1b2c3d4 status:Modified blob:f00dfeed'",
		},
		{
			name:   "untracked file",
			result: Result{Revision: "a1b2c3d4", Category: CategoryUntracked, Blob: "f00dfeed"},
			want:   "'ref:a1b2c3d4 status:Untracked blob:f00dfeed'",
		},
		{
			name:   "unknown category keeps revision and blob",
			result: Result{Revision: "a1b2c3d4", Category: CategoryUnknown, Blob: "f00dfeed"},
			want:   "'ref:a1b2c3d4 status:UNKNOWN blob:f00dfeed'",
		},
		{
			name:   "no revision but hashed",
			result: Result{Blob: "f00dfeed"},
			want:   "'status:UNKNOWN blob:f00dfeed'",
		},
		{
			name:   "nothing available",
			result: Result{},
			want:   "'status:UNKNOWN'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultLineQuotesAreLiteral(t *testing.T) {
	line := Result{Revision: "abc"}.Line()
	if line[0] != '\'' || line[len(line)-1] != '\'' {
		t.Errorf("line %q must begin and end with a literal single quote", line)
	}
}
