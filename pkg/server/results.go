package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"ramsvik.no/Olsmak/pkg/model"
)

type rankingEntry struct {
	Rank     int     `json:"rank"`
	BeerNo   int     `json:"beerNo"`
	Name     string  `json:"name"`
	Average  float64 `json:"average"`
	Votes    int     `json:"votes"`
	Revealed bool    `json:"revealed"`
}

// ComputeRanking aggregates all votes into a leaderboard. Until the tasting
// is revealed, beer names are redacted to their slot number so the results
// screen can stay on the projector without spoiling the answer key. Ties on
// average break toward the lower slot number.
func ComputeRanking(ratings []*model.Rating, names map[int]string, revealed bool) []rankingEntry {
	totals := make(map[int]int)
	counts := make(map[int]int)

	for _, rating := range ratings {
		totals[rating.BeerNo] += rating.Score
		counts[rating.BeerNo]++
	}

	entries := make([]rankingEntry, 0, len(counts))

	for beerNo, count := range counts {
		name := fmt.Sprintf("Øl #%d", beerNo)
		if revealed {
			if known, found := names[beerNo]; found {
				name = known
			}
		}

		entries = append(entries, rankingEntry{
			BeerNo:   beerNo,
			Name:     name,
			Average:  float64(totals[beerNo]) / float64(count),
			Votes:    count,
			Revealed: revealed,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}

		return entries[i].BeerNo < entries[j].BeerNo
	})

	for index := range entries {
		entries[index].Rank = index + 1
	}

	return entries
}

type voteEntry struct {
	BeerNo      int    `json:"beerNo"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
}

// ComputeVotes flattens every individual vote, highest score first. Equal
// scores keep a stable beer/name order so refreshes do not shuffle the list.
func ComputeVotes(ratings []*model.Rating) []voteEntry {
	votes := make([]voteEntry, 0, len(ratings))

	for _, rating := range ratings {
		votes = append(votes, voteEntry{
			BeerNo:      rating.BeerNo,
			DisplayName: rating.DisplayName,
			Score:       rating.Score,
		})
	}

	sort.Slice(votes, func(i, j int) bool {
		if votes[i].Score != votes[j].Score {
			return votes[i].Score > votes[j].Score
		}

		if votes[i].BeerNo != votes[j].BeerNo {
			return votes[i].BeerNo < votes[j].BeerNo
		}

		return votes[i].DisplayName < votes[j].DisplayName
	})

	return votes
}

// summarizeParticipants folds the vote log into one row per participant,
// flagging whether they have scored the beer currently being poured. The
// display name from a participant's latest beer wins.
func summarizeParticipants(ratings []*model.Rating, currentBeerNo int) []participantProgress {
	byUser := make(map[string]*participantProgress)
	latestBeer := make(map[string]int)

	for _, rating := range ratings {
		progress, found := byUser[rating.UserID]
		if !found {
			progress = &participantProgress{UserID: rating.UserID}
			byUser[rating.UserID] = progress
		}

		progress.Votes++

		if rating.BeerNo == currentBeerNo {
			progress.VotedNow = true
		}

		if rating.BeerNo >= latestBeer[rating.UserID] {
			latestBeer[rating.UserID] = rating.BeerNo
			progress.DisplayName = rating.DisplayName
		}
	}

	participants := make([]participantProgress, 0, len(byUser))
	for _, progress := range byUser {
		participants = append(participants, *progress)
	}

	sort.Slice(participants, func(i, j int) bool {
		return participants[i].DisplayName < participants[j].DisplayName
	})

	return participants
}

// Ranking serves the leaderboard for the results screen.
func (s *TastingServer) Ranking(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	ratings, err := s.ratings.GetRatingsForTasting(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	names, err := s.beers.GetAssignedBeerNames(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revealed": tasting.Revealed,
		"ranking":  ComputeRanking(ratings, names, tasting.Revealed),
	})
}

// Votes serves the raw vote list, highest score first.
func (s *TastingServer) Votes(c *gin.Context) {
	tasting, ok := s.ownedTasting(c)
	if !ok {
		return
	}

	ratings, err := s.ratings.GetRatingsForTasting(c.Request.Context(), tasting.ID)
	if err != nil {
		s.replyError(c, err)

		return
	}

	c.JSON(http.StatusOK, ComputeVotes(ratings))
}
