package orn2ttl

import (
	log "github.com/sirupsen/logrus"
)

// Stats is a run summary
type Stats struct {
	JunctionsRead      int
	JunctionsAdmitted  int
	SegmentsRead       int
	SegmentsAdmitted   int
	SegmentsVirtual    int
	SegmentsOutside    int
	SegmentsUnnamed    int
	Roads              int
	Statements         int
	DanglingReferences int
	Unrecognized       int
	Unparseable        int
}

// RecordIssues counts field issues and logs them: unrecognized vocabulary values are warnings, parse failures are debug noise
func (stats *Stats) RecordIssues(issues []FieldIssue) {
	for _, issue := range issues {
		switch issue.Kind {
		case ISSUE_UNRECOGNIZED:
			stats.Unrecognized++
			log.WithFields(log.Fields{
				"record": issue.RecordID,
				"field":  issue.Field,
				"value":  issue.Raw,
			}).Warn("Unrecognized value. Default branch will be used")
		case ISSUE_UNPARSEABLE:
			stats.Unparseable++
			log.WithFields(log.Fields{
				"record": issue.RecordID,
				"field":  issue.Field,
				"value":  issue.Raw,
			}).Debug("Unparseable value. Field is treated as absent")
		}
	}
}

// Log prints summary
func (stats *Stats) Log() {
	log.WithFields(log.Fields{
		"junctions_read":      stats.JunctionsRead,
		"junctions_admitted":  stats.JunctionsAdmitted,
		"segments_read":       stats.SegmentsRead,
		"segments_admitted":   stats.SegmentsAdmitted,
		"segments_virtual":    stats.SegmentsVirtual,
		"segments_outside":    stats.SegmentsOutside,
		"segments_unnamed":    stats.SegmentsUnnamed,
		"roads":               stats.Roads,
		"statements":          stats.Statements,
		"dangling_references": stats.DanglingReferences,
		"unrecognized":        stats.Unrecognized,
		"unparseable":         stats.Unparseable,
	}).Info("Run summary")
}
