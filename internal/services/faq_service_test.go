package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/prashilgroup/prashil-backend/internal/dto"
	"github.com/prashilgroup/prashil-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFAQListAndOrdering(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(db)

	_, err := svc.Create(&dto.FAQRequest{
		Question: "What courses do you offer?",
		Answer:   "Domestic and abroad programs.",
		Section:  models.FAQSectionEducare,
		Order:    2,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.FAQRequest{
		Question: "How do I apply?",
		Answer:   "Through the dashboard.",
		Section:  models.FAQSectionEducare,
		Order:    1,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.FAQRequest{
		Question: "What loans are available?",
		Answer:   "Education loans via partner banks.",
		Section:  models.FAQSectionFinance,
		Order:    1,
	})
	require.NoError(t, err)

	t.Run("section filter and display order", func(t *testing.T) {
		faqs, err := svc.List(models.FAQSectionEducare)
		require.NoError(t, err)
		require.Len(t, faqs, 2)
		assert.Equal(t, "How do I apply?", faqs[0].Question)
		assert.Equal(t, "What courses do you offer?", faqs[1].Question)
	})

	t.Run("empty section returns everything", func(t *testing.T) {
		faqs, err := svc.List("")
		require.NoError(t, err)
		assert.Len(t, faqs, 3)
	})

	t.Run("unknown section is rejected", func(t *testing.T) {
		_, err := svc.List("careers")
		assert.ErrorIs(t, err, ErrInvalidFAQSection)
	})
}

func TestFAQUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewFAQService(db)

	faq, err := svc.Create(&dto.FAQRequest{
		Question: "Is counselling free?",
		Answer:   "The first session is.",
		Section:  models.FAQSectionEduGuide,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(faq.ID, &dto.FAQRequest{
		Question: "Is career counselling free?",
		Answer:   "The first session is free of charge.",
		Section:  models.FAQSectionEduGuide,
		Order:    3,
	}))

	var got models.FAQ
	require.NoError(t, db.First(&got, "id = ?", faq.ID).Error)
	assert.Equal(t, "Is career counselling free?", got.Question)
	assert.Equal(t, 3, got.DisplayOrder)

	assert.ErrorIs(t, svc.Update(uuid.New(), &dto.FAQRequest{
		Question: "q", Answer: "a", Section: models.FAQSectionHome,
	}), ErrFAQNotFound)

	require.NoError(t, svc.Delete(faq.ID))
	assert.ErrorIs(t, svc.Delete(faq.ID), ErrFAQNotFound)
}
