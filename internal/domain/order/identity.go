package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeriveID maps (seller, buyer, transaction instant) to the order's
// identity: "<sellerID>_<buyerID>_<unixMillis>". The derivation is
// deterministic, so two claim attempts for the same triple collide on the
// same key and duplicate creation reduces to an existence check inside the
// claim transaction. The id doubles as the chat room name on the clients.
func DeriveID(sellerID, buyerID uuid.UUID, transactionDate time.Time) string {
	return fmt.Sprintf("%s_%s_%d", sellerID, buyerID, transactionDate.UnixMilli())
}
