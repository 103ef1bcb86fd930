package shiftRepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"salonkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// shiftDoc is the stored shape. BSON document keys are strings, so the
// day-of-month map is keyed by the day's decimal form.
type shiftDoc struct {
	StaffID string                      `bson:"staffId"`
	Year    int                         `bson:"year"`
	Month   int                         `bson:"month"`
	Days    map[string]models.DayRecord `bson:"days"`
}

func (repo *mongoShiftRepo) GetMonth(ctx context.Context, staffID string, year, month int) (*models.ShiftEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"staffId": staffID, "year": year, "month": month}

	var doc shiftDoc
	err := repo.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift template: %w", err)
	}

	entry := &models.ShiftEntry{
		StaffID: doc.StaffID,
		Year:    doc.Year,
		Month:   doc.Month,
		Days:    make(map[int]models.DayRecord, len(doc.Days)),
	}
	for key, rec := range doc.Days {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > 31 {
			continue
		}
		rec.Intervals = models.SanitizeIntervals(rec.Intervals)
		entry.Days[day] = rec
	}
	return entry, nil
}

func (repo *mongoShiftRepo) Upsert(ctx context.Context, entry *models.ShiftEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := shiftDoc{
		StaffID: entry.StaffID,
		Year:    entry.Year,
		Month:   entry.Month,
		Days:    make(map[string]models.DayRecord, len(entry.Days)),
	}
	for day, rec := range entry.Days {
		if day < 1 || day > 31 {
			continue
		}
		rec.Intervals = models.SanitizeIntervals(rec.Intervals)
		doc.Days[strconv.Itoa(day)] = rec
	}

	filter := bson.M{"staffId": entry.StaffID, "year": entry.Year, "month": entry.Month}
	_, err := repo.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert shift template: %w", err)
	}
	return nil
}
