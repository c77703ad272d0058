package legacy

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"talktrack/internal/domain"
	"talktrack/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionsXML = `<?xml version="1.0" encoding="UTF-8"?>
<dataroot xmlns:od="urn:schemas-microsoft-com:officedata" generated="2024-01-10T10:00:00">
<Sessions>
<SessionID>1</SessionID>
<SessionName>Go Concurrency Patterns </SessionName>
<SessionLevel>300</SessionLevel>
<SessionAbstract>Channels &amp; goroutines</SessionAbstract>
<Elevator_x0020_pitch>Stop sharing memory</Elevator_x0020_pitch>
<Retired>0</Retired>
</Sessions>
<Sessions>
<SessionID>2</SessionID>
<SessionName>Old Talk</SessionName>
<SessionLevel>Intro</SessionLevel>
<Retired>1</Retired>
</Sessions>
<Sessions>
<SessionID>3</SessionID>
</Sessions>
</dataroot>`

const eventsXML = `<?xml version="1.0" encoding="UTF-8"?>
<dataroot>
<tblEvents>
<EventID>10</EventID>
<EventName>GopherCon EU</EventName>
<City>Berlin</City>
<Country>Germany</Country>
<DateStart>2016-08-27T00:00:00</DateStart>
<DateEnd>2016-08-28T00:00:00</DateEnd>
<IsRemote>0</IsRemote>
</tblEvents>
<tblEvents>
<EventID>11</EventID>
<EventName>Remote Summit</EventName>
<DateStart>2020-04-01T00:00:00</DateStart>
<IsRemote>1</IsRemote>
</tblEvents>
<tblEvents>
<EventID>12</EventID>
<EventName>GopherCon EU</EventName>
</tblEvents>
</dataroot>`

const sessionEventsXML = `<?xml version="1.0" encoding="UTF-8"?>
<dataroot>
<tblSessionEvents><EventID>10</EventID><SessionID>1</SessionID><Status>Accepted</Status></tblSessionEvents>
<tblSessionEvents><EventID>11</EventID><SessionID>2</SessionID><Status>Rejected</Status></tblSessionEvents>
<tblSessionEvents><EventID>12</EventID><SessionID>1</SessionID><Status>Accepted</Status></tblSessionEvents>
<tblSessionEvents><EventID>99</EventID><SessionID>1</SessionID></tblSessionEvents>
<tblSessionEvents><EventID>11</EventID><SessionID>42</SessionID></tblSessionEvents>
</dataroot>`

func parseAll(t *testing.T) Tables {
	t.Helper()
	sessions, err := ParseSessions(strings.NewReader(sessionsXML))
	require.NoError(t, err)
	events, err := ParseEvents(strings.NewReader(eventsXML))
	require.NoError(t, err)
	subs, err := ParseSessionEvents(strings.NewReader(sessionEventsXML))
	require.NoError(t, err)
	return Tables{Sessions: sessions, Events: events, SessionEvents: subs}
}

func newImporter(t *testing.T) (*Importer, *jsonfile.Store) {
	t.Helper()
	store := jsonfile.NewStore(filepath.Join(t.TempDir(), "data.json"), "")
	return &Importer{
		Events:      jsonfile.NewEventRepository(store),
		Sessions:    jsonfile.NewSessionRepository(store),
		Submissions: jsonfile.NewSubmissionRepository(store),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, store
}

func TestParse(t *testing.T) {
	tables := parseAll(t)

	require.Len(t, tables.Sessions, 3)
	assert.Equal(t, "Go Concurrency Patterns ", tables.Sessions[0].Name)
	assert.Equal(t, "Channels & goroutines", tables.Sessions[0].Abstract)
	assert.Equal(t, "Stop sharing memory", tables.Sessions[0].ElevatorPitch)
	require.Len(t, tables.Events, 3)
	assert.Equal(t, "2016-08-27T00:00:00", tables.Events[0].DateStart)
	require.Len(t, tables.SessionEvents, 5)
	assert.Equal(t, "Accepted", tables.SessionEvents[0].Status)
}

func TestParse_Malformed(t *testing.T) {
	_, err := ParseEvents(strings.NewReader(`<dataroot><tblEvents><EventID>1</tblEvents>`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tblEvents")
}

func TestImporter_Import(t *testing.T) {
	ctx := context.Background()
	im, store := newImporter(t)

	rep, err := im.Import(ctx, parseAll(t))

	require.NoError(t, err)
	assert.Equal(t, Report{
		SessionsImported:    2,
		SessionsSkipped:     1,
		EventsImported:      2,
		EventsSkipped:       1,
		SubmissionsImported: 2,
		SubmissionsSkipped:  1,
		MissingSessions:     1,
		MissingEvents:       1,
	}, *rep)

	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)

	sessions := map[string]*domain.Session{}
	for _, s := range snap.Sessions {
		sessions[s.Name] = s
	}
	require.Contains(t, sessions, "Go Concurrency Patterns")
	assert.Equal(t, "300", sessions["Go Concurrency Patterns"].Level)
	assert.Equal(t, "100", sessions["Old Talk"].Level, "unknown levels fall back to 100")
	assert.True(t, sessions["Old Talk"].Retired)

	events := map[string]*domain.Event{}
	for _, e := range snap.Events {
		events[e.Name] = e
	}
	assert.Equal(t, "2016-08-27", events["GopherCon EU"].DateStart)
	assert.Equal(t, "2016-08-28", events["GopherCon EU"].DateEnd)
	assert.True(t, events["Remote Summit"].Remote)

	states := map[string]domain.SubmissionState{}
	for _, s := range snap.Submissions {
		states[s.EventID] = s.State
		assert.NotEmpty(t, s.NameUsed)
	}
	assert.Equal(t, domain.StateSelected, states[events["GopherCon EU"].ID])
	assert.Equal(t, domain.StateRejected, states[events["Remote Summit"].ID])
}

func TestImporter_ImportTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	im, store := newImporter(t)
	_, err := im.Import(ctx, parseAll(t))
	require.NoError(t, err)

	rep, err := im.Import(ctx, parseAll(t))

	require.NoError(t, err)
	assert.Zero(t, rep.SessionsImported)
	assert.Zero(t, rep.EventsImported)
	assert.Zero(t, rep.SubmissionsImported)
	snap, err := store.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Events, 2)
	assert.Len(t, snap.Sessions, 2)
	assert.Len(t, snap.Submissions, 2)
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2016-08-27", datePart("2016-08-27T00:00:00"))
	assert.Equal(t, "2016-08-27", datePart(" 2016-08-27 "))
	assert.Equal(t, "", datePart(""))
}
