package database

import (
	"strings"
	"testing"
)

func TestDSN(t *testing.T) {
	dsn := DSN("drivent", "pw", "db", "3306", "drivent")
	for _, want := range []string{
		"drivent:pw@tcp(db:3306)/drivent",
		"parseTime=true",
		"clientFoundRows=true",
		"charset=utf8mb4",
	} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN() = %q, missing %q", dsn, want)
		}
	}
	if strings.Contains(DSN("drivent", "", "db", "3306", "drivent"), "drivent:@") {
		t.Error("empty password should not render a colon")
	}
}
