package directory

import (
	"context"

	"github.com/carebridge/symptomdesk/pkg/models"
)

// fallbackTable is the built-in directory used when no live source is
// available.
var fallbackTable = []models.PhysicianRecord{
	{Name: "Dr. Alice Johnson", Specialization: "Cardiology", Experience: "15 years", Contact: "555-0123"},
	{Name: "Dr. Robert Smith", Specialization: "Neurology", Experience: "12 years", Contact: "555-0124"},
	{Name: "Dr. Emily Chen", Specialization: "Dermatology", Experience: "10 years", Contact: "555-0125"},
	{Name: "Dr. Michael Rodriguez", Specialization: "Orthopedics", Experience: "20 years", Contact: "555-0126"},
	{Name: "Dr. Sarah Williams", Specialization: "Gastroenterology", Experience: "8 years", Contact: "555-0127"},
	{Name: "Dr. James Wilson", Specialization: "Pulmonology", Experience: "14 years", Contact: "555-0128"},
	{Name: "Dr. Lisa Brown", Specialization: "Endocrinology", Experience: "11 years", Contact: "555-0129"},
	{Name: "Dr. Mark Davis", Specialization: "Psychiatry", Experience: "9 years", Contact: "555-0130"},
	{Name: "Dr. Nancy Lee", Specialization: "Ophthalmology", Experience: "16 years", Contact: "555-0131"},
	{Name: "Dr. Thomas Martin", Specialization: "ENT", Experience: "13 years", Contact: "555-0132"},
	{Name: "Dr. Jennifer Garcia", Specialization: "General Practice", Experience: "8 years", Contact: "555-0133"},
}

// Fallback returns a fresh copy of the built-in physician directory.
func Fallback() []models.PhysicianRecord {
	out := make([]models.PhysicianRecord, len(fallbackTable))
	copy(out, fallbackTable)
	return out
}

// BuiltinSource serves the fallback table directly, for deployments without
// a live directory.
type BuiltinSource struct{}

func (BuiltinSource) Name() string { return "builtin" }

func (BuiltinSource) Load(_ context.Context) ([]models.PhysicianRecord, error) {
	return Fallback(), nil
}

var _ Source = BuiltinSource{}
