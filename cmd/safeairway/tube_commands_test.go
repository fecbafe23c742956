package main

import "testing"

func TestTubeLookups(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"od", []string{"tube", "od", "Bivona", "2.5"}, "Bivona 2.5 (Bivona): OD 4.0 mm"},
		{"od shiley extended", []string{"tube", "od", "Shiley XLT", "6"}, "OD 8.5 mm"},
		{"od unknown", []string{"tube", "od", "Acme", "4.0"}, "(Custom): OD Not available"},
		{"suction", []string{"tube", "suction", "3.5"}, "Suction catheter for 3.5: 8 Fr"},
		{"suction miss", []string{"tube", "suction", "7"}, "Suction catheter for 7.0: Not available"},
		{"ett depth", []string{"tube", "ett-depth", "4"}, "ETT 4.0 suction depth: 20 cm"},
		{"insert depth", []string{"tube", "insert-depth", "4.0"}, "Bivona pediatric 4.0 insertion depth: 7.1 cm"},
		{"insert depth flextend", []string{"tube", "insert-depth", "4.5", "--flextend"}, "Bivona pediatric 4.5 flextend insertion depth: 10.2 cm"},
		{"sizes", []string{"tube", "sizes", "medtronic"}, "Family:"},
		{"sizes custom", []string{"tube", "sizes", "custom"}, "Face plates:"},
		{"sizes per variant", []string{"tube", "sizes", "bivona"}, "2.5, 3.0, 3.5, 4.0\n"},
		{"sizes one variant", []string{"tube", "sizes", "bivona", "--variant", "plus"}, "Sizes (pediatric-plus):  4.0, 4.5, 5.0, 5.5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCLI(t, tt.args, "")
			if err != nil {
				t.Fatalf("%v: %v", tt.args, err)
			}
			requireContains(t, out, tt.want)
		})
	}
}

func TestTubeLookupErrors(t *testing.T) {
	for _, args := range [][]string{
		{"tube", "od", "Bivona", "big"},
		{"tube", "suction", "-1"},
		{"tube", "insert-depth", "4.0", "--family", "acme"},
		{"tube", "insert-depth", "4.0", "--variant", "adult"},
		{"tube", "insert-depth", "4.0", "--family", "shiley", "--flextend"},
		{"tube", "sizes", "acme"},
		{"tube", "sizes", "shiley", "--variant", "plus"},
		{"tube", "sizes", "bivona", "--variant", "adult"},
	} {
		if _, _, err := runCLI(t, args, ""); err == nil {
			t.Errorf("expected %v to fail", args)
		}
	}
}

func TestEmergencyCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"emergency"}, "")
	if err != nil {
		t.Fatalf("emergency: %v", err)
	}
	requireContains(t, out, "can't suction\ncan't ventilate\n")

	out, _, err = runCLI(t, []string{"emergency", "can't", "ventilate", "--suction-size", "4"}, "")
	if err != nil {
		t.Fatalf("emergency scenario: %v", err)
	}
	requireContains(t, out, "1. Call for help immediately")
	requireContains(t, out, "4. Consider 4.0 endotracheal tube insertion")

	if _, _, err := runCLI(t, []string{"emergency", "fire"}, ""); err == nil {
		t.Fatal("expected unknown scenario to fail")
	}
}
