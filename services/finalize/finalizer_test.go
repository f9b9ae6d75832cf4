package finalize

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dragontravel/models"
	"dragontravel/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryReservationRepo struct {
	created []models.Reservation
	err     error
}

func (m *memoryReservationRepo) Create(_ context.Context, res models.Reservation) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.created = append(m.created, res)
	return res.ID, nil
}

func (m *memoryReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	for i := range m.created {
		if m.created[i].ID == id {
			return &m.created[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memoryReservationRepo) GetAll(_ context.Context) ([]models.Reservation, error) {
	return m.created, nil
}

func (m *memoryReservationRepo) DeleteByID(_ context.Context, _ string) error { return nil }

type stubCatalog struct {
	byPrefix map[string]string
	echo     bool
}

func (s *stubCatalog) FindByPrefix(_ context.Context, prefix string) (string, error) {
	if s.echo {
		return prefix, nil
	}
	return s.byPrefix[prefix], nil
}

type stubSentiment struct {
	score *models.Sentiment
	err   error
	calls int
}

func (s *stubSentiment) Score(_ context.Context, _ string) (*models.Sentiment, error) {
	s.calls++
	return s.score, s.err
}

type captureEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (c *captureEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.tasks = append(c.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestFinalizer(repo *memoryReservationRepo, airports, airlines *stubCatalog, sentiment *stubSentiment, enq *captureEnqueuer) *DefaultFinalizer {
	return &DefaultFinalizer{
		Reservations: repo,
		Airports:     airports,
		Airlines:     airlines,
		Sentiment:    sentiment,
		Tasks:        enq,
		Logger:       zap.NewNop(),
	}
}

func collectedReservation() *models.Reservation {
	return &models.Reservation{
		ClientName:    "Maria",
		Language:      models.LangEnglish,
		Origin:        "madrid",
		Destination:   "rome",
		RoundTrip:     models.TriFalse,
		DepartureDate: "14/03/2026",
		Passengers:    2,
		Airline:       "Iberia",
	}
}

func TestFinalizePersistsAndQueuesAudio(t *testing.T) {
	repo := &memoryReservationRepo{}
	airports := &stubCatalog{byPrefix: map[string]string{
		"madrid": "Adolfo Suárez Madrid–Barajas Airport",
		"rome":   "Leonardo da Vinci Airport",
	}}
	airlines := &stubCatalog{byPrefix: map[string]string{"Iberia": "Iberia Airlines"}}
	enq := &captureEnqueuer{}
	f := newTestFinalizer(repo, airports, airlines, &stubSentiment{}, enq)

	res := collectedReservation()
	summary, audioID, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)

	require.NotEmpty(t, res.ID)
	require.Equal(t, "dragontravel/audio/"+res.ID, audioID)
	require.Equal(t, "Adolfo Suárez Madrid–Barajas Airport en madrid", res.Origin)
	require.Equal(t, "Leonardo da Vinci Airport en rome", res.Destination)
	require.Equal(t, "Iberia Airlines", res.Airline)
	require.Contains(t, summary, "Iberia Airlines")

	require.Len(t, repo.created, 1)
	require.Equal(t, res.ID, repo.created[0].ID)

	require.Len(t, enq.tasks, 1)
	require.Equal(t, tasks.TypeAudioSynthesize, enq.tasks[0].Type())
	var payload tasks.AudioPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &payload))
	require.Equal(t, audioID, payload.AudioID)
	require.Equal(t, summary, payload.Text)
	require.Equal(t, models.LangEnglish, payload.Language)
}

func TestFinalizeAssignsRandomAirline(t *testing.T) {
	repo := &memoryReservationRepo{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, &stubSentiment{}, &captureEnqueuer{})

	res := collectedReservation()
	res.Airline = ""
	_, _, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Contains(t, airlineShortlist, res.Airline)
}

func TestFinalizeFallbackLabels(t *testing.T) {
	repo := &memoryReservationRepo{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{}, &stubSentiment{}, &captureEnqueuer{})

	res := collectedReservation()
	_, _, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Equal(t, "Airport of madrid en madrid", res.Origin)
	require.Equal(t, "Airport of rome en rome", res.Destination)
	require.Equal(t, "local airline", res.Airline)
}

func TestFinalizeFallbackLabelsSpanish(t *testing.T) {
	repo := &memoryReservationRepo{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{}, &stubSentiment{}, &captureEnqueuer{})

	res := collectedReservation()
	res.Language = models.LangSpanish
	_, _, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Equal(t, "Aeropuerto de madrid en madrid", res.Origin)
	require.Equal(t, "Aerolinea local", res.Airline)
}

func TestFinalizeScoresComment(t *testing.T) {
	repo := &memoryReservationRepo{}
	sentiment := &stubSentiment{score: &models.Sentiment{Polarity: 0.8, Subjectivity: 0.4}}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, sentiment, &captureEnqueuer{})

	res := collectedReservation()
	res.WantsComment = models.TriTrue
	res.Comment = "great service"
	_, _, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Equal(t, 1, sentiment.calls)
	require.Equal(t, 0.8, res.Sentiment.Polarity)
}

func TestFinalizeSentimentFailureIsNotFatal(t *testing.T) {
	repo := &memoryReservationRepo{}
	sentiment := &stubSentiment{err: errors.New("model unavailable")}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, sentiment, &captureEnqueuer{})

	res := collectedReservation()
	res.WantsComment = models.TriTrue
	res.Comment = "great service"
	_, _, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Nil(t, res.Sentiment)
	require.Len(t, repo.created, 1)
}

func TestFinalizeSkipsSentimentWithoutComment(t *testing.T) {
	repo := &memoryReservationRepo{}
	sentiment := &stubSentiment{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, sentiment, &captureEnqueuer{})

	_, _, err := f.Finalize(context.Background(), collectedReservation())
	require.NoError(t, err)
	require.Zero(t, sentiment.calls)
}

func TestFinalizePersistFailure(t *testing.T) {
	repo := &memoryReservationRepo{err: errors.New("mongo down")}
	enq := &captureEnqueuer{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, &stubSentiment{}, enq)

	_, _, err := f.Finalize(context.Background(), collectedReservation())
	require.Error(t, err)
	require.Empty(t, enq.tasks)
}

func TestFinalizeEnqueueFailure(t *testing.T) {
	repo := &memoryReservationRepo{}
	enq := &captureEnqueuer{err: errors.New("redis down")}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, &stubSentiment{}, enq)

	_, _, err := f.Finalize(context.Background(), collectedReservation())
	require.Error(t, err)
}

func TestFinalizeKeepsExistingID(t *testing.T) {
	repo := &memoryReservationRepo{}
	f := newTestFinalizer(repo, &stubCatalog{}, &stubCatalog{echo: true}, &stubSentiment{}, &captureEnqueuer{})

	res := collectedReservation()
	res.ID = "fixed-id"
	_, audioID, err := f.Finalize(context.Background(), res)
	require.NoError(t, err)
	require.Equal(t, "fixed-id", res.ID)
	require.Equal(t, "dragontravel/audio/fixed-id", audioID)
}
