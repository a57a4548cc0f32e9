package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters so a user query is matched as a
// literal substring. Postgres treats backslash as the escape character.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}
