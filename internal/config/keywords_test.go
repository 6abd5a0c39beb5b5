package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testRules() *KeywordRules {
	return &KeywordRules{
		Rules: []KeywordRule{
			{Match: []string{"レンジ", "レンチン"}, Keywords: []string{"電子レンジ調理器", "耐熱容器"}},
			{Match: []string{"ゆで卵"}, Keywords: []string{"ゆで卵メーカー"}},
			{Match: []string{"焼き", "焼く"}, Keywords: []string{"グリルパン"}},
		},
		Defaults: []string{"調理器具", "キッチン用品"},
	}
}

func TestDerive_MatchingRule(t *testing.T) {
	rules := testRules()

	got := rules.Derive("レンチンで簡単！鶏むね肉")
	want := []string{"電子レンジ調理器", "耐熱容器", "調理器具", "キッチン用品"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Derive() = %v, want %v", got, want)
	}
}

func TestDerive_MultipleRules(t *testing.T) {
	rules := testRules()

	got := rules.Derive("レンジでゆで卵を作って焼き目をつける")
	want := []string{"電子レンジ調理器", "耐熱容器", "ゆで卵メーカー", "グリルパン", "調理器具", "キッチン用品"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Derive() = %v, want %v", got, want)
	}
}

func TestDerive_NoMatchFallsBackToDefaults(t *testing.T) {
	rules := testRules()

	got := rules.Derive("サラダを和えるだけ")
	want := []string{"調理器具", "キッチン用品"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Derive() = %v, want %v", got, want)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	rules := testRules()

	first := rules.Derive("レンジでゆで卵")
	for i := 0; i < 10; i++ {
		if got := rules.Derive("レンジでゆで卵"); !reflect.DeepEqual(got, first) {
			t.Fatalf("Derive() not deterministic: run %d = %v, first = %v", i, got, first)
		}
	}
}

func TestDerive_DeduplicatesKeywords(t *testing.T) {
	rules := &KeywordRules{
		Rules: []KeywordRule{
			{Match: []string{"レンジ"}, Keywords: []string{"耐熱容器"}},
			{Match: []string{"蒸し"}, Keywords: []string{"耐熱容器", "スチーマー"}},
		},
	}

	got := rules.Derive("レンジで蒸し鶏")
	want := []string{"耐熱容器", "スチーマー"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Derive() = %v, want %v", got, want)
	}
}

func TestLoadKeywordRules_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	yaml := `rules:
  - match: ["レンジ"]
    keywords: ["電子レンジ調理器"]
defaults:
  - 調理器具
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	rules, err := LoadKeywordRules(path)
	if err != nil {
		t.Fatalf("LoadKeywordRules() error: %v", err)
	}
	if len(rules.Rules) != 1 || len(rules.Defaults) != 1 {
		t.Errorf("rules = %+v, want 1 rule and 1 default", rules)
	}
	if got := rules.Derive("レンジ調理"); len(got) != 2 {
		t.Errorf("Derive() = %v, want 2 keywords", got)
	}
}

func TestLoadKeywordRules_MissingFile(t *testing.T) {
	_, err := LoadKeywordRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadKeywordRules() should return error for missing file")
	}
}

func TestLoadKeywordRules_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.yaml")
	if err := os.WriteFile(path, []byte("rules: [unclosed"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadKeywordRules(path); err == nil {
		t.Error("LoadKeywordRules() should return error for invalid YAML")
	}
}
