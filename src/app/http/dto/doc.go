// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON serialization/deserialization
//   - Keep json tags out of the domain package
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateJokeRequest)
//   - Response types: <Resource>Response (e.g., JokeResponse)
package dto
