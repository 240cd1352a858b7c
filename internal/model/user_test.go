package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasProvince(t *testing.T) {
	admin := Principal{Role: RoleAdmin}
	assert.True(t, admin.HasProvince(ProvinceFars))

	chief := Principal{Role: RoleChiefExecutive}
	assert.True(t, chief.HasProvince(ProvinceYazd))

	expert := Principal{Role: RoleExpert, Provinces: []Province{ProvinceFars, ProvinceYazd}}
	assert.True(t, expert.HasProvince(ProvinceYazd))
	assert.False(t, expert.HasProvince(ProvinceQom))

	manager := Principal{Role: RoleProvinceManager}
	assert.False(t, manager.HasProvince(ProvinceFars))
}

func TestCanModify(t *testing.T) {
	owner := uuid.New()

	admin := Principal{UserID: uuid.New(), Role: RoleAdmin}
	assert.True(t, admin.CanModify(owner, ProvinceFars))

	vice := Principal{UserID: uuid.New(), Role: RoleViceChiefExecutive}
	assert.True(t, vice.CanModify(owner, ProvinceFars))

	self := Principal{UserID: owner, Role: RoleProvinceManager}
	assert.True(t, self.CanModify(owner, ProvinceFars))

	assignedExpert := Principal{UserID: uuid.New(), Role: RoleExpert, Provinces: []Province{ProvinceFars}}
	assert.True(t, assignedExpert.CanModify(owner, ProvinceFars))

	otherExpert := Principal{UserID: uuid.New(), Role: RoleExpert, Provinces: []Province{ProvinceQom}}
	assert.False(t, otherExpert.CanModify(owner, ProvinceFars))

	stranger := Principal{UserID: uuid.New(), Role: RoleProvinceManager, Provinces: []Province{ProvinceFars}}
	assert.False(t, stranger.CanModify(owner, ProvinceFars))
}
