package service

import (
	"math"

	"attendix/database"
	"attendix/database/model"
	"attendix/logger"
)

// StudentService covers the student-only operations.
type StudentService struct{}

// AttendanceRecord is one marked day as returned to the student.
type AttendanceRecord struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// AttendanceSummary is the student's full attendance view: the records
// newest first plus the derived counters.
type AttendanceSummary struct {
	Records     []AttendanceRecord `json:"records"`
	PresentDays int                `json:"present_days"`
	AbsentDays  int                `json:"absent_days"`
	Percentage  int                `json:"percentage"`
}

// GetAttendance loads the student's attendance records and computes the
// summary counters. A student with no marked days gets an empty summary,
// not an error.
func (s *StudentService) GetAttendance(studentId int) (*AttendanceSummary, error) {
	db := database.GetDB()

	var records []model.Attendance
	err := db.Model(model.Attendance{}).
		Where("student_id = ?", studentId).
		Order("date DESC").
		Find(&records).
		Error
	if err != nil {
		logger.Warning("get attendance err:", err)
		return nil, ErrStoreUnavailable
	}

	return summarize(records), nil
}

// summarize derives the counters from the marked days. "Full Day" counts
// present, "Absent" counts absent, any other status counts only toward
// the total. Zero marked days yields percentage 0.
func summarize(records []model.Attendance) *AttendanceSummary {
	summary := &AttendanceSummary{
		Records: make([]AttendanceRecord, 0, len(records)),
	}

	for _, record := range records {
		summary.Records = append(summary.Records, AttendanceRecord{
			Date:    record.Date.Format("2006-01-02"),
			Status:  record.Status,
			Remarks: record.Remarks,
		})
		switch record.Status {
		case model.StatusFullDay:
			summary.PresentDays++
		case model.StatusAbsent:
			summary.AbsentDays++
		}
	}

	if total := len(records); total > 0 {
		summary.Percentage = int(math.Round(float64(summary.PresentDays) / float64(total) * 100))
	}
	return summary
}
