package synth

import (
	"encoding/hex"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const parcelPrefix = "PARCEL-"

// NewParcelID generates a land parcel ID: the constant prefix plus the first
// 8 hex digits of a random UUID, uppercased. The UUID draws its 128 bits from
// the shared seeded source so IDs are reproducible across runs. Collisions
// are not checked; at this scale they are practically impossible.
func NewParcelID(r *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// rand.Rand.Read cannot fail
		panic(err)
	}
	return parcelPrefix + strings.ToUpper(hex.EncodeToString(id[:4]))
}
