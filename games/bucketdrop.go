package games

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gemrush.io/backend/rng"
)

const bucketCount = 9

func bucketClass(bucket int) string {
	return fmt.Sprintf("bucket_%d", bucket)
}

// BucketDropGame drops a ball into one of nine buckets; the payout is
// purely positional, highest in the middle.
type BucketDropGame struct{}

type BucketDropDetail struct {
	Bucket int `json:"bucket"`
}

func (g *BucketDropGame) Resolve(wager decimal.Decimal, _ Params, src rng.Source) (Outcome, error) {
	bucket := src.IntRange(0, bucketCount-1)

	class := bucketClass(bucket)
	mult := Lookup(BucketDrop, class)

	return Outcome{
		Game:       BucketDrop,
		Class:      class,
		Multiplier: mult,
		Payout:     wager.Mul(mult),
		Text:       fmt.Sprintf("BUCKET: %d", bucket+1),
		Detail:     BucketDropDetail{Bucket: bucket},
	}, nil
}
