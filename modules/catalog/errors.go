package catalog

import (
	"fmt"
	"net/http"

	"github.com/yegordb/bindkit/handler"
)

// CursedItemError marks an item id the catalog refuses to serve.
type CursedItemError struct {
	ID int
}

func (e CursedItemError) Error() string {
	return fmt.Sprintf("item %d is cursed", e.ID)
}

// RegisterErrors installs the catalog's domain error mappings on the
// registry. Cursed items answer 418 rather than the generic 500.
func RegisterErrors(reg *handler.Registry) {
	handler.On(reg, func(r *http.Request, err CursedItemError) handler.Response {
		return handler.JSON(map[string]any{
			"message": fmt.Sprintf("Nope! I don't like item %d.", err.ID),
		}, handler.WithStatus(http.StatusTeapot))
	})
}
