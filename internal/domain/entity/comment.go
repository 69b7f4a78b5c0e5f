package entity

import "time"

// CommentAuthor is the display identity attached to a comment. It is not a User reference.
type CommentAuthor struct {
	Name   string `bson:"name" json:"name"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// Comment is a node in a post's comment tree
type Comment struct {
	ID        string        `bson:"id" json:"id"`
	Author    CommentAuthor `bson:"author" json:"author"`
	Timestamp time.Time     `bson:"timestamp" json:"timestamp"`
	Content   string        `bson:"content" json:"content"`
	Replies   []Comment     `bson:"replies" json:"replies"`
	Likes     int           `bson:"likes" json:"likes"`
}

// Clone deep-copies the comment and all of its replies.
func (c Comment) Clone() Comment {
	if c.Replies != nil {
		replies := make([]Comment, len(c.Replies))
		for i, r := range c.Replies {
			replies[i] = r.Clone()
		}
		c.Replies = replies
	} else {
		c.Replies = []Comment{}
	}
	return c
}

// CountComments returns the number of comments in the given forest, replies included.
func CountComments(comments []Comment) int {
	n := 0
	for _, c := range comments {
		n += 1 + CountComments(c.Replies)
	}
	return n
}

// InsertReply walks the tree depth-first and appends reply to the first comment whose id
// matches parentID. It reports whether the parent was found.
func InsertReply(comments []Comment, parentID string, reply Comment) bool {
	for i := range comments {
		if comments[i].ID == parentID {
			comments[i].Replies = append(comments[i].Replies, reply)
			return true
		}
		if InsertReply(comments[i].Replies, parentID, reply) {
			return true
		}
	}
	return false
}

// FindComment returns a pointer into the tree, or nil.
func FindComment(comments []Comment, id string) *Comment {
	for i := range comments {
		if comments[i].ID == id {
			return &comments[i]
		}
		if found := FindComment(comments[i].Replies, id); found != nil {
			return found
		}
	}
	return nil
}
