//go:build e2e

package experience_test

import (
	"net/http"
	"testing"

	"tripslot/internal/handler/dto/request"
	"tripslot/internal/handler/dto/response"
	"tripslot/tests/common/dbtest"
	"tripslot/tests/common/httptest"
	"tripslot/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	experiencesURL   = "/api/experiences"
	promoValidateURL = "/api/promos/validate"
)

type ExperienceSuite struct {
	e2e.SharedSuite
}

func (s *ExperienceSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestExperienceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExperienceSuite))
}

func (s *ExperienceSuite) TestListExperiences() {
	s.Run("Normal case: catalog is public and lists all experiences", func() {
		t := s.T()

		dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		dbtest.CreateTestExperience(t, s.DB, "City Food Walk", 4000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ExperienceListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)

		names := []string{items[0].Name, items[1].Name}
		require.Contains(t, names, "Sunset Kayak Tour")
		require.Contains(t, names, "City Food Walk")
	})

	s.Run("Normal case: empty catalog returns an empty array", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, experiencesURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []response.ExperienceListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &items))
		require.Empty(t, items)
	})
}

func (s *ExperienceSuite) TestGetExperience() {
	s.Run("Normal case: detail includes price and location", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/"+experienceID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var detail response.ExperienceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &detail))
		require.Equal(t, experienceID, detail.ID)
		require.Equal(t, "Sunset Kayak Tour", detail.Name)
		require.Equal(t, int64(5000), detail.PriceCents)
		require.NotEmpty(t, detail.Location)
	})

	s.Run("Error case: unknown experience returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/"+uuid.NewString(), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: malformed experience ID returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/not-a-uuid", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *ExperienceSuite) TestListSlots() {
	s.Run("Normal case: slots come back grouped by date, sold out ones excluded", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 5, 10)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "14:00", 0, 10)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-16", "09:00", 10, 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/"+experienceID.String()+"/slots", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var days []response.SlotDayResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &days))
		require.Len(t, days, 2)

		// The sold out 14:00 slot must not be offered as bookable
		require.Equal(t, "2026-09-15", days[0].Date)
		require.Len(t, days[0].Slots, 1)
		require.Equal(t, "10:00", days[0].Slots[0].Time)
		require.Equal(t, int32(5), days[0].Slots[0].RemainingSeats)

		require.Equal(t, "2026-09-16", days[1].Date)
		require.Len(t, days[1].Slots, 1)
	})

	s.Run("Normal case: fully sold out experience returns no days", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		dbtest.CreateTestSlot(t, s.DB, experienceID, "2026-09-15", "10:00", 0, 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/"+experienceID.String()+"/slots", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var days []response.SlotDayResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &days))
		require.Empty(t, days)
	})

	s.Run("Error case: slots of an unknown experience return 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			experiencesURL+"/"+uuid.NewString()+"/slots", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *ExperienceSuite) TestValidatePromo() {
	s.Run("Normal case: percentage promo quotes the discounted total", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		dbtest.CreateTestPromo(t, s.DB, "SAVE10", "percentage", 10, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "SAVE10", ExperienceID: experienceID}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.PromoQuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.Equal(t, "SAVE10", quote.Code)
		require.Equal(t, int64(5000), quote.SubtotalCents)
		require.Equal(t, int64(500), quote.DiscountCents)
		require.Equal(t, int64(4500), quote.TotalCents)
	})

	s.Run("Normal case: fixed promo never quotes below zero", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Cheap Walk", 1000)
		dbtest.CreateTestPromo(t, s.DB, "BIGOFF", "fixed", 2500, true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "BIGOFF", ExperienceID: experienceID}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var quote response.PromoQuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quote))
		require.Equal(t, int64(1000), quote.DiscountCents)
		require.Equal(t, int64(0), quote.TotalCents)
	})

	s.Run("Error case: unknown code returns 404", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "GHOST1", ExperienceID: experienceID}, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: inactive promo is rejected", func() {
		t := s.T()

		experienceID := dbtest.CreateTestExperience(t, s.DB, "Sunset Kayak Tour", 5000)
		dbtest.CreateTestPromo(t, s.DB, "OLDDEAL", "fixed", 500, false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, promoValidateURL,
			request.ValidatePromoRequest{Code: "OLDDEAL", ExperienceID: experienceID}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid or inactive promo code")
	})
}
