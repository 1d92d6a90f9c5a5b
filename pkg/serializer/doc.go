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

// Package serializer reads and writes RecipeHub documents.
//
// Three output formats are supported:
//   - JSON: indented, machine-readable
//   - YAML: human-readable, used for catalog files
//   - Table: columnar output for terminals
//
// Values that implement Tabular render as one row per record in table
// format. Anything else is flattened into dotted FIELD/VALUE pairs.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatTable, "")
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// Reading a catalog from disk or over HTTP:
//
//	cat, err := serializer.FromFileWithContext[recipe.Catalog](ctx, "https://example.com/catalog.yaml")
//
// HTTP handlers respond with RespondJSON, which encodes before writing
// headers so a failed encode never yields a partial 200.
package serializer
