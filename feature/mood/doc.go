// Package mood implements mood tracking for the backend API.
//
// Visitors record entries (mood, emotions, intensity, optional notes); each
// entry is tied to the anonymous visitor id from core/identity and persisted
// through GORM in the mood_entries table.
//
// # Insights
//
// Analyze looks at the seven most recent entries and reports the dominant
// mood, the three most frequent emotions, the number of entries considered
// and the mood distribution. Ties go to whichever value appeared first in
// newest-first order.
//
// # HTTP Endpoints
//
//   - POST /api/mood : Record an entry, returns {"success": true, "id": ...}.
//   - GET /api/moods : The visitor's entries, newest first.
//   - GET /api/insights : The visitor's pattern, or null without entries.
package mood
