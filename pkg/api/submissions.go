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

package api

import (
	"log/slog"
	"net/http"

	"github.com/recipehub/recipehub/pkg/recipe"
	"github.com/recipehub/recipehub/pkg/serializer"
)

// SubmissionReceipt acknowledges an accepted submission.
type SubmissionReceipt struct {
	Status     string            `json:"status" yaml:"status"`
	Submission recipe.Submission `json:"submission" yaml:"submission"`
}

// submitRecipe validates a submission and acknowledges it. Submissions are
// not added to the catalog; they wait for editorial review elsewhere.
func (h *Handler) submitRecipe(w http.ResponseWriter, r *http.Request) {
	var sub recipe.Submission
	if err := decodeBody(w, r, &sub); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := sub.Validate(); err != nil {
		writeErr(w, r, err)
		return
	}

	slog.Info("recipe submitted", "title", sub.Title, "category", sub.Category)
	serializer.RespondJSON(w, http.StatusAccepted, SubmissionReceipt{
		Status:     "pending",
		Submission: sub,
	})
}
