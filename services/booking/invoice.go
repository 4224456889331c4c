package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newInvoiceNo mints a human-facing invoice number: a millisecond timestamp
// plus a short random nonce. Uniqueness is enforced by the repository index;
// the nonce just makes same-millisecond collisions unlikely.
func newInvoiceNo() string {
	nonce := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("INV-%d-%s", time.Now().UnixMilli(), nonce)
}
