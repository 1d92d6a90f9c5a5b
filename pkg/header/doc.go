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

// Package header provides the common resource header for RecipeHub documents.
//
// Catalog files, query results and review listings all begin with the same
// Kubernetes-style envelope so tools can recognise them:
//
//	kind: RecipeCatalog
//	apiVersion: recipehub.dev/v1alpha1
//	metadata:
//	  timestamp: "2025-01-15T10:30:00Z"
//	  version: v1.0.0
//
// # Usage
//
//	var h header.Header
//	h.Init(header.KindQueryResult, header.APIVersion, version)
//
// Extra metadata is added with options, which leave existing keys alone:
//
//	cat.Apply(header.WithMetadata("source", path))
package header
