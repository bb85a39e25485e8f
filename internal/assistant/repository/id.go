package repository

import "github.com/google/uuid"

// EntryID derives a deterministic UUID from the exact question string. Both
// storage backends use it, so re-training the same question always lands on
// the same record.
func EntryID(question string) string {
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(question)).String()
}
