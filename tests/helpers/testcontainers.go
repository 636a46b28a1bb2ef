// Helpers for running the API against a real MariaDB in Docker. Used by the
// integration tests and by the standalone cmd/testcontainers executable.
// Expects environment variables to be loaded from .env files.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cinefilos/cinefilos-api/data"
)

// DatabaseContainer holds the docker resources of one test run: the MariaDB
// container, optionally the API container built from the repo Dockerfile,
// and the network joining them.
type DatabaseContainer struct {
	Network             *testcontainers.DockerNetwork
	DBContainer         testcontainers.Container
	APIContainer        testcontainers.Container
	APIBuilderContainer testcontainers.Container
}

// Terminate tears down every started resource. Safe on partial setups.
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	ctx := context.Background()
	if dc.APIContainer != nil {
		if err := dc.APIContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate API container: %v", err)
		}
	}
	if dc.APIBuilderContainer != nil {
		if err := dc.APIBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate API builder container: %v", err)
		}
	}
	if dc.DBContainer != nil {
		if err := dc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate MariaDB: %v", err)
		}
	}
	if dc.Network != nil {
		if err := dc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// StartDatabaseContainer starts MariaDB, creates the cinefilos schema and
// service account, then builds and starts the API container pointed at it.
func StartDatabaseContainer(t *testing.T) (*DatabaseContainer, error) {
	ctx := context.Background()
	dc := &DatabaseContainer{}

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	dc.Network = nw
	networkName := nw.Name

	dbNetworkName := os.Getenv("DB_HOST")
	tcpDbPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
				"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
				"MYSQL_USER":          os.Getenv("DB_USER"),
				"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
			},
			WaitingFor: wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to start MariaDB")
	}
	dc.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	if err := initDatabase(t, dc, dbHost, dbPort); err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to initialize database")
	}

	imageName := "cinefilos-test:latest"
	exists, err := imageExists(ctx, imageName)
	if err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	apiPortNumber := os.Getenv("PORT")
	tcpAPIPort, err := nat.NewPort("tcp", apiPortNumber)
	if err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to create API port")
	}

	apiContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpAPIPort)},
		Env: map[string]string{
			"DB_TYPE":             "mariadb",
			"DB_HOST":             dbNetworkName,
			"DB_PORT":             os.Getenv("DB_PORT"),
			"DB_DATABASE":         os.Getenv("DB_DATABASE"),
			"DB_USER":             os.Getenv("DB_USER"),
			"DB_PASSWORD":         os.Getenv("DB_PASSWORD"),
			"DB_CONNECTION_LIMIT": os.Getenv("DB_CONNECTION_LIMIT"),
			"JWT_SECRET":          os.Getenv("JWT_SECRET"),
			"PORT":                apiPortNumber,
		},
		WaitingFor: wait.ForHTTP("/health").WithPort(tcpAPIPort).WithStartupTimeout(30 * time.Second),
		Networks:   []string{networkName},
	}

	if !exists {
		sessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", imageName)
		builderContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "cinefilos-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			dc.Terminate(t)
			exitWithError(t, err, "Failed to build cinefilos-test-builder")
		}
		dc.APIBuilderContainer = builderContainer

		imageNameParts := strings.Split(imageName, ":")
		apiContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", imageName)
		apiContainerRequest.Image = imageName
	}

	apiContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: apiContainerRequest,
		Started:          true,
	})
	if err != nil {
		dc.Terminate(t)
		exitWithError(t, err, "Failed to start API container")
	}
	dc.APIContainer = apiContainer

	apiHost, _ := apiContainer.Host(ctx)
	apiPort, _ := apiContainer.MappedPort(ctx, tcpAPIPort)
	logMessage(t, "BASE_URL=http://%s:%s", apiHost, apiPort.Port())

	logMessage(t, "cinefilos test containers started successfully")
	return dc, nil
}

// initDatabase creates the schema and service account with the embedded
// bootstrap SQL, connecting as root on the mapped port.
func initDatabase(t *testing.T, dc *DatabaseContainer, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/",
		os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort.Port()))
	if err != nil {
		return err
	}
	defer db.Close()

	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'",
		os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"))); err != nil {
		return fmt.Errorf("failed to create user %s: %w", os.Getenv("DB_USER"), err)
	}

	if err := executeSQL(db, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("failed to execute tables init sql: %w", err)
	}
	if err := executeSQL(db, data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("failed to execute privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a multi-statement script, stripping -- comments outside of
// string literals first.
func executeSQL(db *sql.DB, script string) error {
	lines := strings.Split(script, "\n")

	var ncls []string
	for _, l := range lines {
		ncls = append(ncls, excludeComment(l))
	}

	joined := strings.Join(ncls, "\n")
	queries := strings.Split(joined, ";")

	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

func excludeComment(line string) string {
	d := "\""
	s := "'"
	c := "--"

	var nc string
	ck := line
	mx := len(line) + 1

	for {
		if len(ck) == 0 {
			return nc
		}

		di := strings.Index(ck, d)
		si := strings.Index(ck, s)
		ci := strings.Index(ck, c)

		if di < 0 {
			di = mx
		}
		if si < 0 {
			si = mx
		}
		if ci < 0 {
			ci = mx
		}

		var ei int

		if di < si && di < ci {
			nc += ck[:di+1]
			ck = ck[di+1:]
			ei = strings.Index(ck, d)
		} else if si < di && si < ci {
			nc += ck[:si+1]
			ck = ck[si+1:]
			ei = strings.Index(ck, s)
		} else if ci < di && ci < si {
			return nc + ck[:ci]
		} else {
			return nc + ck
		}

		nc += ck[:ei+1]
		ck = ck[ei+1:]
	}
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
