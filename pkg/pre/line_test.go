package pre

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		isDirective bool
		keyword     string
		expr        string
		hasExpr     bool
	}{
		{"plain text", "hello world", false, "", "", false},
		{"hash mid-line", "text with # symbols", false, "", "", false},
		{"empty line", "\n", false, "", "", false},
		{"if with expression", "#if FOO\n", true, "#if", "FOO", true},
		{"indented directive", "   #endif\n", true, "#endif", "", false},
		{"tab separated", "#if\tFOO\n", true, "#if", "FOO", true},
		{"expression keeps inner spaces", "#if A == B\n", true, "#if", "A == B", true},
		{"else without expression", "#else\n", true, "#else", "", false},
		{"trailing comment stripped", "#if FOO // why\n", true, "#if", "FOO", true},
		{"comment only leaves no expression", "#else // done\n", true, "#else", "", false},
		{"comment without space", "#if FOO//x\n", true, "#if", "FOO", true},
		{"unknown keyword", "#pragma once\n", true, "#pragma", "once", true},
		{"bare hash", "#\n", true, "#", "", false},
		{"whitespace-only expression", "#if   \n", true, "#if", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := classify(tt.line)
			if ok != tt.isDirective {
				t.Fatalf("classify(%q) directive = %v, want %v", tt.line, ok, tt.isDirective)
			}
			if !ok {
				return
			}
			if dir.keyword != tt.keyword {
				t.Errorf("keyword = %q, want %q", dir.keyword, tt.keyword)
			}
			if dir.hasExpr != tt.hasExpr {
				t.Errorf("hasExpr = %v, want %v", dir.hasExpr, tt.hasExpr)
			}
			if dir.expr != tt.expr {
				t.Errorf("expr = %q, want %q", dir.expr, tt.expr)
			}
		})
	}
}

func TestWordByteClassification(t *testing.T) {
	for _, b := range []byte("azAZ09_") {
		if !isWordByte(b) {
			t.Errorf("isWordByte(%q) = false, want true", b)
		}
	}
	for _, b := range []byte("-+. #!\t") {
		if isWordByte(b) {
			t.Errorf("isWordByte(%q) = true, want false", b)
		}
	}
}
