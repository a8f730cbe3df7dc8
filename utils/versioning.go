package utils

import (
	"fmt"

	"p9e.in/abpts/models"
)

// NextVersion returns the version label for a document about to be
// created, given the live documents that already share its name within
// the same opportunity: "V1" for a brand-new name, "V2" for the second
// upload, and so on.
//
// The count is a snapshot of currently existing rows at insertion time.
// Deleting earlier versions lowers the count, so labels can repeat after
// deletions (delete V1 and V2, upload again while one survivor remains,
// and you get another "V2"). That matches how the product has always
// behaved; callers wanting monotonic labels would need a per-name
// high-water mark that deletion never decrements.
func NextVersion(existingSameName []models.Document) string {
	return fmt.Sprintf("V%d", len(existingSameName)+1)
}
