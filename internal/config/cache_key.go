package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// UserSessionKey returns the cache key for a user's active login session (JTI).
func (r *CacheKeyStruct) UserSessionKey(userID int) string {
	return fmt.Sprintf("login:%d", userID)
}

// ExamPayloadKey returns the cache key for an exam's question payload
// (statements and options only, never the answer key).
func (r *CacheKeyStruct) ExamPayloadKey(examID string) string {
	return fmt.Sprintf("exam:%s:payload", examID)
}

// ExamSubjectsKey returns the cache key for an exam's sorted subject list.
func (r *CacheKeyStruct) ExamSubjectsKey(examID string) string {
	return fmt.Sprintf("exam:%s:subjects", examID)
}

var CacheKey = NewCacheKeyStruct()
