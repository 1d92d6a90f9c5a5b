// Copyright (c) 2025, The RecipeHub Authors. All rights reserved.
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

// Package store persists bookmarks and reviews.
//
// Two implementations share the Store interface: MemoryStore keeps
// everything in process, RedisStore keeps bookmarks in a set per user and
// reviews in a list per recipe. Open picks one from a Redis URL.
//
//	st, err := store.Open(ctx, os.Getenv("REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//	on, err := st.Toggle(ctx, "u-42", 7)
package store
