package core

import "testing"

// TestIsWord tests the word grammar predicate
func TestIsWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"single char", "a*", true},
		{"plot word", "X10000000Y10000000D03*", true},
		{"select word", "D10*", true},
		{"embedded terminator", "ab*\ncd*", true},
		{"empty", "", false},
		{"bare terminator", "*", false},
		{"missing terminator", "abc", false},
		{"text after terminator", "ab*c", false},
		{"double terminator", "ab**", false},
		{"group delimiter inside", "a%b*", false},
		{"terminator without newline", "a*b*", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWord(tt.text); got != tt.want {
				t.Errorf("IsWord(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestIsCommand tests the command grammar predicate
func TestIsCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bare word", "G01*", true},
		{"extended single word", "%MOMM*%", true},
		{"extended multiple words", "%AMDONUT*1,1,0.5,0,0*%", true},
		{"empty", "", false},
		{"empty group", "%%", false},
		{"unterminated group", "%MOMM*", false},
		{"unopened group", "MOMM*%", false},
		{"word missing terminator in group", "%MOMM%", false},
		{"trailing text", "%MOMM*% ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCommand(tt.text); got != tt.want {
				t.Errorf("IsCommand(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestIsName tests the name grammar predicate
func TestIsName(t *testing.T) {
	long := make([]byte, 127)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"letter", "a", true},
		{"attribute name", ".FileFunction", true},
		{"underscore", "_tmp", true},
		{"dollar", "$1", true},
		{"mixed", "My.Name_2", true},
		{"max length", string(long), true},
		{"too long", string(long) + "a", false},
		{"empty", "", false},
		{"leading digit", "1abc", false},
		{"space", "a b", false},
		{"comma", "a,b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsName(tt.text); got != tt.want {
				t.Errorf("IsName(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
