// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/nationtree/questions"
)

const (
	// Answers stay valid until the trees change; expiry only bounds memory.
	answerCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	answerCacheCleanup = 5 * time.Minute
)

// NewAnswerCache creates a cache for question results
func NewAnswerCache() *cache.Cache {
	return cache.New(answerCacheExpiration, answerCacheCleanup)
}

// answerKey identifies a question and its arguments. A nil request and one
// without arguments share a key.
func answerKey(id string, req *questions.Request) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if req == nil || len(req.Args) == 0 {
		return id
	}
	return id + "\x00" + strings.Join(req.Args, "\x00")
}

func CacheAnswer(c *cache.Cache, key string, res *questions.Result) {
	c.Set(key, res, answerCacheExpiration)
}

// GetAnswer returns a copy of the cached result marked as cached, so its
// timings are not mistaken for a fresh run.
func GetAnswer(c *cache.Cache, key string) (*questions.Result, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	res, ok := val.(*questions.Result)
	if !ok {
		return nil, false
	}
	hit := *res
	hit.Cached = true
	return &hit, true
}
