package usecases

import (
	"context"
	"fmt"
	"time"

	"opsportal/internal/domain/profile"
	"opsportal/internal/domain/task"
	"opsportal/internal/shared/db"
	"opsportal/internal/shared/logger"
)

type AddCommentCommand struct {
	TaskID      uint
	AuthorID    uint
	Content     string
	Attachments []string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	taskRepo    task.TaskRepository
	commentRepo task.CommentRepository
	profileRepo profile.ProfileRepository
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	taskRepo task.TaskRepository,
	commentRepo task.CommentRepository,
	profileRepo profile.ProfileRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		profileRepo: profileRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "task_id", cmd.TaskID, "author_id", cmd.AuthorID)

	t, err := uc.taskRepo.GetByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	author, err := uc.profileRepo.GetByID(ctx, cmd.AuthorID)
	if err != nil {
		uc.logger.Errorw("failed to load author profile", "author_id", cmd.AuthorID, "error", err)
		return nil, fmt.Errorf("failed to load author profile: %w", err)
	}

	if !author.IsAdmin() && t.AssigneeID() != author.ID() {
		uc.logger.Warnw("author cannot comment on task", "task_id", cmd.TaskID, "author_id", cmd.AuthorID)
		return nil, fmt.Errorf("permission denied: only the assignee or an admin can comment")
	}

	comment, err := task.NewComment(cmd.TaskID, cmd.AuthorID, author.Role(), cmd.Content, cmd.Attachments)
	if err != nil {
		uc.logger.Errorw("failed to create comment", "error", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	// Comment insert and the task responsiveness timestamp must move
	// together, otherwise the responsiveness check reads a torn state.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return fmt.Errorf("failed to save comment: %w", err)
		}

		if comment.IsFromAdmin() {
			t.RecordAdminComment(comment.CreatedAt())
		} else {
			t.RecordEmployeeReply(comment.CreatedAt())
		}

		if err := uc.taskRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update task", "error", err)
			return fmt.Errorf("failed to update task: %w", err)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "task_id", cmd.TaskID)
	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
