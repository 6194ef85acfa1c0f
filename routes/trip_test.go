package routes

import (
	"strings"
	"testing"

	"github.com/Rudrakshsachdev/TravelSource/models"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func TestActiveTripsFiltersInactive(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	var trips []models.Trip
	stmt := activeTrips(db).Find(&trips).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "is_active = ?") {
		t.Errorf("public trip query does not filter on is_active: %s", sql)
	}
	if len(stmt.Vars) != 1 || stmt.Vars[0] != true {
		t.Errorf("expected single true bind var, got %v", stmt.Vars)
	}
}

// The conflict target must match the (user_id, trip_id) unique index so a
// repeat view updates the existing row instead of inserting a second one.
func TestTripViewUpsertTargetsUserTripPair(t *testing.T) {
	c := tripViewUpsert()

	if len(c.Columns) != 2 || c.Columns[0].Name != "user_id" || c.Columns[1].Name != "trip_id" {
		t.Fatalf("conflict columns = %v, want [user_id trip_id]", c.Columns)
	}
	if len(c.DoUpdates) != 1 || c.DoUpdates[0].Column.Name != "viewed_at" {
		t.Fatalf("on conflict the row should only bump viewed_at, got %v", c.DoUpdates)
	}
	if c.DoNothing {
		t.Error("repeat views must update the timestamp, not be ignored")
	}
}
