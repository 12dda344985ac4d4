package models

// OwnerType tags which table an owner reference points into
type OwnerType string

const (
	OwnerTypeUser OwnerType = "user"
	OwnerTypeTeam OwnerType = "team"
)

// IsValid checks if the OwnerType is valid
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeUser, OwnerTypeTeam:
		return true
	}
	return false
}

// TestCaseStatus is the outcome of the latest test case run
type TestCaseStatus string

const (
	TestCaseStatusSuccess TestCaseStatus = "Success"
	TestCaseStatusFailed  TestCaseStatus = "Failed"
	TestCaseStatusAborted TestCaseStatus = "Aborted"
)

// IsValid checks if the TestCaseStatus is valid
func (s TestCaseStatus) IsValid() bool {
	switch s {
	case TestCaseStatusSuccess, TestCaseStatusFailed, TestCaseStatusAborted:
		return true
	}
	return false
}
