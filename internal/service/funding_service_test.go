package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func TestCoversProvince(t *testing.T) {
	provinces := []model.Province{model.ProvinceFars, model.ProvinceGilan}

	assert.True(t, coversProvince(provinces, model.ProvinceFars))
	assert.True(t, coversProvince(provinces, model.ProvinceGilan))
	assert.False(t, coversProvince(provinces, model.ProvinceBushehr))
	assert.False(t, coversProvince(nil, model.ProvinceFars))
}
