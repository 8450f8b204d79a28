package matching

import "testing"

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		a, b *Candidate
		want bool
	}{
		{
			"no preferences either side",
			&Candidate{},
			&Candidate{},
			true,
		},
		{
			"mutual match",
			&Candidate{Gender: "man", InterestedIn: []string{"woman"}},
			&Candidate{Gender: "woman", InterestedIn: []string{"man"}},
			true,
		},
		{
			"one side rejects",
			&Candidate{Gender: "man", InterestedIn: []string{"woman"}},
			&Candidate{Gender: "woman", InterestedIn: []string{"woman"}},
			false,
		},
		{
			"open side still needs acceptance back",
			&Candidate{Gender: "man"},
			&Candidate{Gender: "woman", InterestedIn: []string{"woman"}},
			false,
		},
		{
			"open side accepted back",
			&Candidate{Gender: "woman"},
			&Candidate{Gender: "woman", InterestedIn: []string{"woman"}},
			true,
		},
		{
			"undisclosed gender waives the check",
			&Candidate{Gender: "", InterestedIn: []string{"woman"}},
			&Candidate{Gender: "", InterestedIn: []string{"man"}},
			true,
		},
		{
			"preference outside the listed set",
			&Candidate{Gender: "nonbinary", InterestedIn: []string{"nonbinary"}},
			&Candidate{Gender: "woman", InterestedIn: []string{"man", "nonbinary"}},
			false,
		},
		{
			"multi-preference match",
			&Candidate{Gender: "nonbinary", InterestedIn: []string{"woman", "nonbinary"}},
			&Candidate{Gender: "woman", InterestedIn: []string{"man", "nonbinary"}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(tt.a, tt.b); got != tt.want {
				t.Errorf("Eligible = %v, want %v", got, tt.want)
			}
			if got := Eligible(tt.b, tt.a); got != tt.want {
				t.Errorf("Eligible not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
