package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/emergency_management_system/internal/models"
	"github.com/shenikar/emergency_management_system/internal/service"
	"github.com/shenikar/emergency_management_system/pkg/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepository struct {
	incidents *mongo.Collection
	snapshots collection[models.DashboardStat]
	now       func() time.Time
}

func NewStatsRepository(db *mongo.Database) service.StatsRepository {
	return &StatsRepository{
		incidents: db.Collection(mongodb.CollectionIncidents),
		snapshots: newCollection[models.DashboardStat](db, mongodb.CollectionDashboardStats),
		now:       time.Now,
	}
}

// Facets runs the counters, breakdowns and response averages in one round trip
func (r *StatsRepository) Facets(ctx context.Context, q models.StatsQuery) (*models.IncidentFacets, error) {
	cursor, err := r.incidents.Aggregate(ctx, facetPipeline(q))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate incident stats: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.IncidentFacets
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode incident stats: %w", err)
	}
	if len(rows) == 0 {
		return &models.IncidentFacets{}, nil
	}
	return &rows[0], nil
}

// MonthlySeries counts incidents per calendar month created at or after from.
// Months without incidents are absent from the result.
func (r *StatsRepository) MonthlySeries(ctx context.Context, from time.Time, filter models.IncidentFilter) ([]models.MonthBucket, error) {
	cursor, err := r.incidents.Aggregate(ctx, monthlyPipeline(from, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly incidents: %w", err)
	}
	defer cursor.Close(ctx)

	buckets := make([]models.MonthBucket, 0)
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("failed to decode monthly incidents: %w", err)
	}
	return buckets, nil
}

// UpsertSnapshot writes the snapshot for stat.Date, creating it on first use.
// createdAt survives recomputes, everything else is overwritten.
func (r *StatsRepository) UpsertSnapshot(ctx context.Context, stat *models.DashboardStat) (*models.DashboardStat, error) {
	now := r.now().UTC()
	update := bson.M{
		"$set": bson.M{
			"source":                stat.Source,
			"metrics":               stat.Metrics,
			"incidentsByType":       stat.IncidentsByType,
			"incidentsBySeverity":   stat.IncidentsBySeverity,
			"incidentsByDepartment": stat.IncidentsByDepartment,
			"responseMetrics":       stat.ResponseMetrics,
			"updatedAt":             now,
		},
		"$setOnInsert": bson.M{
			"date":      stat.Date,
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored models.DashboardStat
	err := r.snapshots.coll.FindOneAndUpdate(ctx, bson.M{"date": stat.Date}, update, opts).Decode(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert dashboard stats for %s: %w", stat.Date.Format(time.DateOnly), err)
	}
	return &stored, nil
}

// ListSnapshots returns snapshots dated on or after since, newest first
func (r *StatsRepository) ListSnapshots(ctx context.Context, since time.Time) ([]models.DashboardStat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.snapshots.find(ctx, bson.M{"date": bson.M{"$gte": since}}, opts)
}

var activeStatuses = bson.A{models.IncidentStatusReported, models.IncidentStatusInProgress}

// allDates is true when every field holds a BSON date
func allDates(fields ...string) bson.M {
	checks := make(bson.A, 0, len(fields))
	for _, f := range fields {
		checks = append(checks, bson.M{"$eq": bson.A{bson.M{"$type": f}, "date"}})
	}
	return bson.M{"$and": checks}
}

// minutesWhen yields (to - from) in minutes when cond holds, null otherwise.
// $avg ignores nulls, so incidents failing cond drop out of the average.
func minutesWhen(cond bson.M, from, to string) bson.M {
	return bson.M{"$cond": bson.A{
		cond,
		bson.M{"$divide": bson.A{bson.M{"$subtract": bson.A{to, from}}, 60000}},
		nil,
	}}
}

func minutesBetween(from, to string) bson.M {
	return minutesWhen(allDates(from, to), from, to)
}

func countIf(cond bson.M) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
}

func notNull(field string) bson.M {
	return bson.M{"$ne": bson.A{field, nil}}
}

func groupCount(field string) bson.A {
	return bson.A{
		bson.M{"$group": bson.M{"_id": field, "count": bson.M{"$sum": 1}}},
	}
}

func labelCount(field string) bson.A {
	return bson.A{
		bson.M{"$match": bson.M{field: bson.M{"$nin": bson.A{nil, ""}}}},
		bson.M{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
	}
}

func facetPipeline(q models.StatsQuery) mongo.Pipeline {
	isCritical := bson.M{"$eq": bson.A{"$severity", models.SeverityCritical}}
	isActive := bson.M{"$in": bson.A{"$status", activeStatuses}}
	isResolved := bson.M{"$eq": bson.A{"$status", models.IncidentStatusResolved}}
	affected := bson.M{"$ifNull": bson.A{"$affectedPeople", 0}}
	// phases only count incidents carrying the full timeline
	timeline := allDates("$createdAt", "$responseTeam.assignedAt", "$responseTeam.arrivedAt", "$responseTeam.resolvedAt")

	return mongo.Pipeline{
		{{Key: "$match", Value: incidentMatch(q)}},
		{{Key: "$facet", Value: bson.M{
			"totals": bson.A{
				bson.M{"$group": bson.M{
					"_id":              nil,
					"total":            bson.M{"$sum": 1},
					"critical":         countIf(isCritical),
					"criticalActive":   countIf(bson.M{"$and": bson.A{isCritical, isActive}}),
					"affectedPeople":   bson.M{"$sum": affected},
					"affectedResolved": bson.M{"$sum": bson.M{"$cond": bson.A{isResolved, affected, 0}}},
				}},
			},
			"byStatus":       groupCount("$status"),
			"byType":         groupCount("$type"),
			"bySeverity":     groupCount("$severity"),
			"byDepartment":   labelCount("location.department"),
			"byNeighborhood": labelCount("location.neighborhood"),
			"response": bson.A{
				bson.M{"$project": bson.M{
					"overall":    minutesBetween("$responseTeam.assignedAt", "$responseTeam.resolvedAt"),
					"assignment": minutesWhen(timeline, "$createdAt", "$responseTeam.assignedAt"),
					"arrival":    minutesWhen(timeline, "$responseTeam.assignedAt", "$responseTeam.arrivedAt"),
					"resolution": minutesWhen(timeline, "$responseTeam.arrivedAt", "$responseTeam.resolvedAt"),
					"sinceCreated": bson.M{"$cond": bson.A{
						isResolved,
						minutesBetween("$createdAt", "$resolvedAt"),
						nil,
					}},
				}},
				bson.M{"$group": bson.M{
					"_id":            nil,
					"overall":        bson.M{"$avg": "$overall"},
					"overallSamples": countIf(notNull("$overall")),
					"assignment":     bson.M{"$avg": "$assignment"},
					"arrival":        bson.M{"$avg": "$arrival"},
					"resolution":     bson.M{"$avg": "$resolution"},
					"phaseSamples": countIf(bson.M{"$and": bson.A{
						notNull("$assignment"), notNull("$arrival"), notNull("$resolution"),
					}}),
					"sinceCreated":   bson.M{"$avg": "$sinceCreated"},
					"createdSamples": countIf(notNull("$sinceCreated")),
				}},
			},
		}}},
	}
}

func monthlyPipeline(from time.Time, filter models.IncidentFilter) mongo.Pipeline {
	match := incidentMatch(models.StatsQuery{Filter: filter, Window: models.TimeWindow{From: from}})
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"total":    bson.M{"$sum": 1},
			"resolved": countIf(bson.M{"$eq": bson.A{"$status", models.IncidentStatusResolved}}),
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":      0,
			"year":     "$_id.year",
			"month":    "$_id.month",
			"total":    1,
			"resolved": 1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}}}},
	}
}
