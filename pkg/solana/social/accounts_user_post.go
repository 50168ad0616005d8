package social

import (
	"fmt"
	"strings"
)

// UserPostHeaderSize is the size of an empty serialized post account.
const UserPostHeaderSize = (8 + // post_count
	4) // posts length prefix

// Post is a single immutable entry in a user's post history. Timestamp is
// caller supplied; the codec does not validate monotonicity.
type Post struct {
	Content   string
	Timestamp uint64
}

func NewPost(content string, timestamp uint64) Post {
	return Post{
		Content:   content,
		Timestamp: timestamp,
	}
}

func (obj *Post) Size() int {
	return 4 + len(obj.Content) + 8
}

func (obj *Post) String() string {
	return fmt.Sprintf("Post{content=%q,timestamp=%d}", obj.Content, obj.Timestamp)
}

// UserPost is the account state held at the user's post address. Posts is
// append only and ordered chronologically. PostCount mirrors len(Posts)
// on every mutation.
type UserPost struct {
	PostCount uint64
	Posts     []Post
}

func NewUserPost() *UserPost {
	return &UserPost{
		Posts: make([]Post, 0),
	}
}

// AddPost appends the post to the history.
func (obj *UserPost) AddPost(post Post) {
	obj.Posts = append(obj.Posts, post)
	obj.PostCount = uint64(len(obj.Posts))
}

func (obj *UserPost) Size() int {
	size := UserPostHeaderSize
	for i := range obj.Posts {
		size += obj.Posts[i].Size()
	}
	return size
}

func (obj *UserPost) Marshal() []byte {
	var offset int
	data := make([]byte, obj.Size())

	putUint64(data, obj.PostCount, &offset)
	putUint32(data, uint32(len(obj.Posts)), &offset)
	for i := range obj.Posts {
		putString(data, obj.Posts[i].Content, &offset)
		putUint64(data, obj.Posts[i].Timestamp, &offset)
	}

	return data
}

// Unmarshal decodes a serialized post account. The receiver is only
// written on success. Trailing bytes are tolerated, since account buffers
// are allocated larger than the state they hold.
func (obj *UserPost) Unmarshal(data []byte) error {
	var offset int

	var postCount uint64
	if err := getUint64(data, &postCount, &offset); err != nil {
		return err
	}

	var numPosts uint32
	if err := getUint32(data, &numPosts, &offset); err != nil {
		return err
	}

	// Every post needs at least its length prefix and timestamp.
	if int(numPosts) > (len(data)-offset)/(4+8) {
		return ErrTruncatedData
	}

	posts := make([]Post, 0, numPosts)
	for i := 0; i < int(numPosts); i++ {
		var post Post
		if err := getString(data, &post.Content, &offset); err != nil {
			return err
		}
		if err := getUint64(data, &post.Timestamp, &offset); err != nil {
			return err
		}
		posts = append(posts, post)
	}

	obj.PostCount = postCount
	obj.Posts = posts

	return nil
}

func (obj *UserPost) String() string {
	encoded := make([]string, len(obj.Posts))
	for i := range obj.Posts {
		encoded[i] = obj.Posts[i].String()
	}

	return fmt.Sprintf(
		"UserPost{post_count=%d,posts=[%s]}",
		obj.PostCount,
		strings.Join(encoded, ","),
	)
}
