package types

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFrequencyTableKeepsFirstSeenOrder(t *testing.T) {
	table := NewFrequencyTable([]string{"the", "cat", "sat", "on", "the", "mat"})

	if table.Len() != 5 {
		t.Fatalf("expected 5 distinct words, got %d", table.Len())
	}

	want := []WordCount{
		{"the", 2}, {"cat", 1}, {"sat", 1}, {"on", 1}, {"mat", 1},
	}
	if got := table.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if table.Get("the") != 2 || table.Get("dog") != 0 {
		t.Errorf("unexpected counts: the=%d dog=%d", table.Get("the"), table.Get("dog"))
	}
}

func TestFrequencyTableEmpty(t *testing.T) {
	var nilTable *FrequencyTable
	for name, table := range map[string]*FrequencyTable{
		"nil":   nilTable,
		"empty": NewFrequencyTable(nil),
	} {
		t.Run(name, func(t *testing.T) {
			if table.Len() != 0 {
				t.Errorf("expected empty table, got %d entries", table.Len())
			}
			if len(table.Entries()) != 0 || len(table.Map()) != 0 {
				t.Errorf("expected no entries")
			}
			data, err := table.MarshalJSON()
			if err != nil {
				t.Fatalf("unexpected marshal error: %v", err)
			}
			if string(data) != "{}" {
				t.Errorf("expected {}, got %s", data)
			}
		})
	}
}

func TestFrequencyTableJSONPreservesOrder(t *testing.T) {
	table := NewFrequencyTable([]string{"zebra", "apple", "zebra", "mango"})

	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if string(data) != `{"zebra":2,"apple":1,"mango":1}` {
		t.Fatalf("unexpected JSON: %s", data)
	}

	var decoded FrequencyTable
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(decoded.Entries(), table.Entries()) {
		t.Fatalf("expected %v, got %v", table.Entries(), decoded.Entries())
	}
}

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want string
	}{
		{DifficultyEasy, "easy"},
		{DifficultyModerate, "moderate"},
		{DifficultyHard, "hard"},
		{Difficulty(42), "Difficulty(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDifficultyJSON(t *testing.T) {
	data, err := json.Marshal(DifficultyModerate)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	if string(data) != `"moderate"` {
		t.Fatalf("expected \"moderate\", got %s", data)
	}

	var d Difficulty
	if err := json.Unmarshal([]byte(`"hard"`), &d); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}
	if d != DifficultyHard {
		t.Errorf("expected hard, got %v", d)
	}

	if err := json.Unmarshal([]byte(`"impossible"`), &d); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
