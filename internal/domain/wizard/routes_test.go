package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHrefs(t *testing.T) {
	assert.Equal(t, "/quantity/kitchen", QuantityHref("kitchen"))
	assert.Equal(t, "/area/kitchen", AreaHref("kitchen"))
	assert.Equal(t, "/area/dining%20area", AreaHref("dining area"))
	assert.Equal(t, "/optionals/bathrooms?roomIndex=2", OptionalsHref("bathrooms", 2))
	assert.Equal(t, "/room-summary/bathrooms/3", RoomSummaryHref("bathrooms", 3))
	assert.Equal(t, SelectAreasHref, DefaultResumeHref)
}
