package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	profile "github.com/Tap30/profile-go"
	"github.com/Tap30/profile-go/adapters"
)

const endpoint = "http://localhost:3000/"

var client *profile.Client
var scanner *bufio.Scanner
var httpAdapter *ContextAwareHTTPAdapter
var policy = profile.ErrorPolicyReject
var accessToken = "playground-token"
var postCounter int

func main() {
	scanner = bufio.NewScanner(os.Stdin)

	httpAdapter = NewContextAwareHTTPAdapter(10 * time.Second) // Default 10s timeout

	if err := newClient(); err != nil {
		fmt.Printf("❌ Failed to create client: %v\n", err)
		return
	}

	fmt.Println("🎯 Profile Service Interactive Client")
	fmt.Println("Connected to:", endpoint)
	fmt.Println("⏱️  HTTP Timeout: 10s (configurable)")
	fmt.Println()

	for {
		showMenu()
		choice := readInput("Choose an option: ")

		switch choice {
		case "1":
			login()
		case "2":
			call("getProfile", profile.Params{"id": 1, "accessToken": accessToken})
		case "3":
			call("updateProfile", profile.Params{"id": 1, "accessToken": accessToken, "displayName": "Playground Reader"})
		case "4":
			call("logoutProfile", profile.Params{"accessToken": accessToken})
		case "5":
			call("createGroup", profile.Params{"name": "Playground Readers", "description": "Books and more"})
		case "6":
			call("getGroup", profile.Params{"id": 1})
		case "7":
			queryGroups()
		case "8":
			call("joinGroup", profile.Params{"groupId": 1, "memberId": 1, "accessToken": accessToken})
		case "9":
			call("leaveGroup", profile.Params{"groupId": 1, "memberId": 1, "accessToken": accessToken})
		case "10":
			createPost()
		case "11":
			call("commentOnGroupPost", profile.Params{"postId": 1, "uid": 1, "commentText": "Great pick!", "accessToken": accessToken})
		case "12":
			call("removeGroupPost", profile.Params{"postId": 1, "accessToken": accessToken})
		case "13":
			call("saveLike", profile.Params{"uid": 1, "item_id": "870970-basis:12345678", "value": 1, "accessToken": accessToken})
		case "14":
			call("resetLikes", profile.Params{"uid": 1, "accessToken": accessToken})
		case "15":
			runAllOperations()
		case "16":
			call("getGroup", profile.Params{"id": "fail"})
		case "17":
			testInvalidEndpoint()
		case "18":
			setHTTPTimeout()
		case "19":
			testTimeoutScenario()
		case "20":
			toggleErrorPolicy()
		case "21":
			fmt.Println("👋 Goodbye!")
			return
		default:
			fmt.Println("❌ Invalid option. Please try again.")
			fmt.Println()
		}
	}
}

func newClient() error {
	c, err := profile.NewClient(profile.Config{
		Endpoint:      endpoint,
		ErrorPolicy:   policy,
		HTTPAdapter:   httpAdapter,
		LoggerAdapter: adapters.NewHCLogLoggerAdapter(adapters.LogLevelDebug),
	})
	if err != nil {
		return err
	}
	client = c
	return nil
}

func showMenu() {
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println("👤 Profiles")
	fmt.Println("1. Login")
	fmt.Println("2. Get Profile")
	fmt.Println("3. Update Profile")
	fmt.Println("4. Logout")
	fmt.Println()
	fmt.Println("👥 Groups")
	fmt.Println("5. Create Group")
	fmt.Println("6. Get Group")
	fmt.Println("7. Query Groups")
	fmt.Println("8. Join Group")
	fmt.Println("9. Leave Group")
	fmt.Println()
	fmt.Println("📝 Posts and Likes")
	fmt.Println("10. Create Post")
	fmt.Println("11. Comment on Post")
	fmt.Println("12. Remove Post")
	fmt.Println("13. Save Like")
	fmt.Println("14. Reset Likes")
	fmt.Println()
	fmt.Println("📦 Batch")
	fmt.Println("15. Run All Operations")
	fmt.Println()
	fmt.Println("⚠️  Error Handling")
	fmt.Println("16. Test Server Error")
	fmt.Println("17. Test Invalid Endpoint")
	fmt.Println()
	fmt.Println("⏱️  Context & Timeout Control")
	fmt.Println("18. Set HTTP Timeout")
	fmt.Println("19. Test Timeout Scenario")
	fmt.Println()
	fmt.Printf("20. Toggle Error Policy (current: %s)\n", policy)
	fmt.Println("21. Exit")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

func readInput(prompt string) string {
	fmt.Print(prompt)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

func call(name string, params profile.Params) {
	fmt.Printf("\n📡 %s\n", name)
	op, ok := client.Operations()[name]
	if !ok {
		fmt.Printf("❌ Unknown operation: %s\n\n", name)
		return
	}

	result, err := op(context.Background(), params)
	if err != nil {
		var missing *profile.MissingParameterError
		if errors.As(err, &missing) {
			fmt.Printf("❌ Missing parameter %q\n\n", missing.Field)
			return
		}
		fmt.Printf("❌ Error: %v\n\n", err)
		return
	}
	printResult(result)
}

func printResult(result any) {
	switch r := result.(type) {
	case bool:
		fmt.Printf("✅ Result: %v\n\n", r)
	case *profile.HTTPResponse:
		if r == nil {
			fmt.Println("⚠️  No response (transport error ignored by policy)")
			fmt.Println()
			return
		}
		fmt.Printf("✅ Status: %d\n", r.Status)
		if len(r.Body) > 0 {
			fmt.Printf("   Body: %s\n", r.Body)
		}
		fmt.Println()
	default:
		fmt.Printf("✅ Result: %v\n\n", r)
	}
}

func login() {
	fmt.Println("\n🔐 Login")
	resp, err := client.LoginProfile(context.Background(), profile.Params{
		"email":    "reader@example.com",
		"password": "secret",
	})
	if err != nil {
		fmt.Printf("❌ Error: %v\n\n", err)
		return
	}
	if resp == nil {
		fmt.Println("⚠️  No response")
		fmt.Println()
		return
	}

	var token struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body, &token); err == nil && token.ID != "" {
		accessToken = token.ID
	}
	fmt.Printf("✅ Logged in, access token: %s\n\n", accessToken)
}

func queryGroups() {
	query := readInput("Search groups for: ")
	call("queryGroups", profile.Params{"query": query, "accessToken": accessToken})
}

func createPost() {
	postCounter++
	call("createGroupPost", profile.Params{
		"groupId":     1,
		"accessToken": accessToken,
		"title":       fmt.Sprintf("Post %d", postCounter),
		"content":     "What are you reading this week?",
		"postownerid": 1,
	})
}

func runAllOperations() {
	fmt.Println("\n📦 Run All Operations")
	params := profile.Params{
		"id":          1,
		"uid":         1,
		"groupId":     1,
		"memberId":    1,
		"postId":      1,
		"agencyid":    "775100",
		"loanerid":    "0102030405",
		"query":       "read",
		"title":       "Batch post",
		"content":     "Posted by the playground",
		"commentText": "Batch comment",
		"item_id":     "870970-basis:12345678",
		"value":       1,
		"accessToken": accessToken,
	}

	ops := client.Operations()
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		call(name, params)
	}
	fmt.Printf("✅ Ran %d operations\n\n", len(names))
}

func testInvalidEndpoint() {
	fmt.Println("\n⚠️  Test Invalid Endpoint")

	errorClient, err := profile.NewClient(profile.Config{
		Endpoint:      "http://localhost:9999/",
		ErrorPolicy:   policy,
		HTTPAdapter:   adapters.NewNetHTTPAdapter(2 * time.Second),
		LoggerAdapter: adapters.NewHCLogLoggerAdapter(adapters.LogLevelWarn),
	})
	if err != nil {
		fmt.Printf("❌ Failed to create error client: %v\n\n", err)
		return
	}

	resp, err := errorClient.GetGroup(context.Background(), profile.Params{"id": 1})
	if err != nil {
		fmt.Printf("✅ Got expected error: %v\n\n", err)
		return
	}
	if resp == nil {
		fmt.Println("✅ Error swallowed by legacy policy (check logs)")
		fmt.Println()
		return
	}
	fmt.Printf("⚠️  Unexpected response: %d\n\n", resp.Status)
}

func setHTTPTimeout() {
	fmt.Println("\n⏱️  Set HTTP Timeout")
	fmt.Println("Current timeout: ", httpAdapter.Timeout())
	input := readInput("Enter timeout in seconds (e.g., 5): ")

	var seconds int
	if _, err := fmt.Sscanf(input, "%d", &seconds); err != nil {
		fmt.Printf("❌ Invalid input: %v\n\n", err)
		return
	}

	httpAdapter.SetTimeout(time.Duration(seconds) * time.Second)
	fmt.Printf("✅ HTTP timeout set to %d seconds\n\n", seconds)
}

func testTimeoutScenario() {
	fmt.Println("\n⏱️  Test Timeout Scenario")
	fmt.Println("Setting timeout to 1s, server delays 3s...")

	originalTimeout := httpAdapter.Timeout()
	httpAdapter.SetTimeout(1 * time.Second)

	call("getGroup", profile.Params{"id": "slow"})

	httpAdapter.SetTimeout(originalTimeout)
	fmt.Printf("✅ Restored timeout to %v\n\n", originalTimeout)
}

func toggleErrorPolicy() {
	if policy == profile.ErrorPolicyReject {
		policy = profile.ErrorPolicyLegacy
	} else {
		policy = profile.ErrorPolicyReject
	}
	if err := newClient(); err != nil {
		fmt.Printf("❌ Failed to create client: %v\n\n", err)
		return
	}
	fmt.Printf("✅ Error policy set to %s\n\n", policy)
}
