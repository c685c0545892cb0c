// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// Submission is one uploaded prediction file as tracked by the tournament
// backend. The nested blocks mirror the wire format of
// GET /v2/users/{user}/submissions.
type Submission struct {
	// ID is the server-assigned submission identifier.
	ID int64 `json:"id"`

	// UploadedAt is when the file was received by the backend.
	UploadedAt time.Time `json:"uploadedAt"`

	// EvaluatedAt is when the submission was last scored. Nil until the
	// first evaluation pass has run.
	EvaluatedAt *time.Time `json:"evaluatedAt,omitempty"`

	// Selected reports whether this submission counts for the round.
	Selected bool `json:"selected"`

	// SelectedBy names who selected the submission ("user" or "system").
	SelectedBy string `json:"selectedBy,omitempty"`

	// Chosen reports whether the uploader picked this submission as their
	// entry for the crunch.
	Chosen bool `json:"chosen"`

	// Comment is the free-form note attached by the uploader.
	Comment string `json:"comment,omitempty"`

	// FileHash is the MD5 of the uploaded file, used server-side for
	// duplicate detection.
	FileHash string `json:"fileHash"`

	// FileName is the name the file was uploaded under.
	FileName string `json:"fileName"`

	// User identifies the uploader.
	User SubmissionUser `json:"user"`

	// Crunch ties the submission to a crunch within a round.
	Crunch SubmissionCrunch `json:"crunch"`

	// Private holds out-of-sample scores. Only present on the caller's own
	// submissions.
	Private *ScoreBreakdown `json:"private,omitempty"`

	// Public holds the publicly visible scores.
	Public ScoreBreakdown `json:"public"`
}

// SubmissionUser is the uploader block of a submission record.
type SubmissionUser struct {
	// ID is the numeric user identifier.
	ID int64 `json:"id"`
	// Username is the public display name.
	Username string `json:"username"`
	// Deleted reports whether the account has been removed.
	Deleted bool `json:"deleted"`
	// Role is the account role ("USER", "ADMIN", ...).
	Role string `json:"role"`
}

// SubmissionCrunch is the crunch block of a submission record.
type SubmissionCrunch struct {
	// Number is the crunch counter within the round.
	Number int64 `json:"number"`
	// RoundID is the round the crunch belongs to.
	RoundID int64 `json:"roundId"`
	// Final reports whether this crunch closes the round.
	Final bool `json:"final"`
	// At is when the crunch was opened.
	At time.Time `json:"at"`
}

// ScoreBreakdown holds the per-period metric values computed for one
// submission, either on the public or the private leaderboard.
type ScoreBreakdown struct {
	// Success reports whether scoring completed.
	Success bool `json:"success"`
	// R, G and B are the correlation metrics over the red, green and blue
	// prediction periods.
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	// Mean is the mean of R, G and B.
	Mean float64 `json:"mean"`
	// Message carries the server's scoring diagnostics, if any.
	Message string `json:"message,omitempty"`
	// Originality measures distance from other submissions of the round.
	Originality float64 `json:"originality"`
	// ArenaScore is the combined arena ranking score. The backend only
	// computes it for the private breakdown.
	ArenaScore float64 `json:"arenaScore,omitempty"`
}

// SubmissionColumns is the flattened, snake_case schema produced by
// [SubmissionsTable], one row per submission.
var SubmissionColumns = []Column{
	{Name: "id", Type: ColumnInt},
	{Name: "user_id", Type: ColumnInt},
	{Name: "username", Type: ColumnString},
	{Name: "deleted", Type: ColumnBool},
	{Name: "role", Type: ColumnString},
	{Name: "round_id", Type: ColumnInt},
	{Name: "crunch_number", Type: ColumnInt},
	{Name: "final_crunch", Type: ColumnBool},
	{Name: "crunch_ts", Type: ColumnTime},
	{Name: "upload_ts", Type: ColumnTime},
	{Name: "eval_ts", Type: ColumnTime},
	{Name: "selected", Type: ColumnBool},
	{Name: "selected_by", Type: ColumnString},
	{Name: "chosen", Type: ColumnBool},
	{Name: "comment", Type: ColumnString},
	{Name: "file_name", Type: ColumnString},
	{Name: "file_hash", Type: ColumnString},
	{Name: "private_success", Type: ColumnBool},
	{Name: "private_r", Type: ColumnFloat},
	{Name: "private_g", Type: ColumnFloat},
	{Name: "private_b", Type: ColumnFloat},
	{Name: "private_mean", Type: ColumnFloat},
	{Name: "private_message", Type: ColumnString},
	{Name: "private_originality", Type: ColumnFloat},
	{Name: "private_arena_score", Type: ColumnFloat},
	{Name: "public_success", Type: ColumnBool},
	{Name: "public_r", Type: ColumnFloat},
	{Name: "public_g", Type: ColumnFloat},
	{Name: "public_b", Type: ColumnFloat},
	{Name: "public_mean", Type: ColumnFloat},
	{Name: "public_message", Type: ColumnString},
	{Name: "public_originality", Type: ColumnFloat},
}

// SubmissionsTable flattens submission records into a [Table] with
// [SubmissionColumns]. Submissions without a private block (other users'
// submissions) get empty private cells.
func SubmissionsTable(submissions []Submission) (*Table, error) {
	t := NewTable(SubmissionColumns...)

	for _, s := range submissions {
		var evalTS time.Time
		if s.EvaluatedAt != nil {
			evalTS = *s.EvaluatedAt
		}

		private := []any{nil, nil, nil, nil, nil, nil, nil, nil}
		if s.Private != nil {
			private = []any{
				s.Private.Success, s.Private.R, s.Private.G, s.Private.B, s.Private.Mean,
				s.Private.Message, s.Private.Originality, s.Private.ArenaScore,
			}
		}

		values := []any{
			s.ID,
			s.User.ID,
			s.User.Username,
			s.User.Deleted,
			s.User.Role,
			s.Crunch.RoundID,
			s.Crunch.Number,
			s.Crunch.Final,
			s.Crunch.At,
			s.UploadedAt,
			evalTS,
			s.Selected,
			s.SelectedBy,
			s.Chosen,
			s.Comment,
			s.FileName,
			s.FileHash,
		}
		values = append(values, private...)
		values = append(values,
			s.Public.Success, s.Public.R, s.Public.G, s.Public.B, s.Public.Mean,
			s.Public.Message, s.Public.Originality,
		)

		if err := t.AppendValues(values...); err != nil {
			return nil, err
		}
	}

	return t, nil
}
