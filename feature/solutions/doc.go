// Package solutions serves coping strategies for difficult emotions.
//
// The catalog covers anxiety, depression, stress, anger and sadness. For a
// list of emotions, the first two techniques, affirmations and activities of
// each are merged in order without duplicates.
//
// # HTTP Endpoints
//
//   - GET /api/solutions : Supported emotions.
//   - GET /api/solutions/:emotions : Strategies for e.g. "anxiety,stress".
package solutions
